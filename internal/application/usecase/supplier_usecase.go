package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores y su asociación
// con productos (product_suppliers).
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	now := time.Now()
	supplier := &entity.Supplier{
		ID:           uuid.New().String(),
		Name:         in.Name,
		ContactEmail: in.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// LinkProduct asocia un proveedor con un producto. Proveedor y producto
// deben existir; la asociación es idempotente.
func (uc *SupplierUseCase) LinkProduct(supplierID, productID string) error {
	supplier, err := uc.repo.GetByID(supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	return uc.repo.LinkProduct(supplierID, productID)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
