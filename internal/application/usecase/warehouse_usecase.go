package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas.
type WarehouseUseCase struct {
	repo        repository.WarehouseRepository
	companyRepo repository.CompanyRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, companyRepo repository.CompanyRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea una bodega; la empresa referenciada debe existir.
func (uc *WarehouseUseCase) Create(companyID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Location:  in.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas de una empresa con paginación.
func (uc *WarehouseUseCase) List(companyID string, limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		CompanyID: w.CompanyID,
		Name:      w.Name,
		Location:  w.Location,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
