package repository

import (
	"context"

	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByIDs es retrieval en lote para el motor de alertas: un solo round-trip
// por conjunto de ids, nunca un fetch por fila dentro del loop.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
}
