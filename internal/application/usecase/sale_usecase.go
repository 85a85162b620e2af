package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

// SaleUseCase registra ventas (hechos append-only que alimentan el motor
// de alertas) y lista las recientes.
type SaleUseCase struct {
	repo        repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, productRepo repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo, productRepo: productRepo}
}

// Register valida y persiste una venta. Quantity debe ser > 0 y el producto
// debe existir; SaleDate ausente = ahora, y es inmutable una vez registrada.
func (uc *SaleUseCase) Register(in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	var invalid []string
	if in.ProductID == "" {
		invalid = append(invalid, "product_id")
	}
	if in.Quantity == nil || *in.Quantity <= 0 {
		invalid = append(invalid, "quantity")
	}
	if len(invalid) > 0 {
		return nil, domain.NewValidationError(invalid...)
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	now := time.Now()
	saleDate := now
	if in.SaleDate != nil {
		saleDate = *in.SaleDate
	}
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  *in.Quantity,
		SaleDate:  saleDate,
		CreatedAt: now,
	}
	if err := uc.repo.Create(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// ListRecent lista ventas recientes con paginación.
func (uc *SaleUseCase) ListRecent(limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.repo.ListRecent(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		SaleDate:  s.SaleDate,
		CreatedAt: s.CreatedAt,
	}
}
