package catalog

import (
	"context"

	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza Rollback en cualquier camino de
// error y Commit solo si fn retorna nil: el producto y su inventario inicial
// nunca existen a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}
