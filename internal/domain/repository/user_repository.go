package repository

import "github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
