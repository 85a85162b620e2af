package repository

import "github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
}
