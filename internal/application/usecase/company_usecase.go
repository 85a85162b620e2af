package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

// CompanyUseCase casos de uso CRUD para empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una nueva empresa.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
