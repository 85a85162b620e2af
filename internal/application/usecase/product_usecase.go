package usecase

import (
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

// ProductUseCase lecturas del catálogo. La creación vive en catalog
// (CreateProductWithInventory): un producto nunca se crea sin su inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
		IsBundle:  p.IsBundle,
		Threshold: p.Threshold,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
