package repository

import (
	"context"
	"time"

	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
)

// ProductSalesTotal agregado de ventas por producto dentro de una ventana.
type ProductSalesTotal struct {
	ProductID     string
	TotalQuantity int64
}

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas son hechos append-only: solo Create y lecturas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	ListRecent(limit, offset int) ([]*entity.Sale, error)

	// SumQuantityByProductSince agrega las cantidades vendidas por producto
	// desde la fecha dada (sale_date >= since). Un solo query; define el
	// conjunto de "productos activos" del motor de alertas.
	SumQuantityByProductSince(ctx context.Context, since time.Time) ([]ProductSalesTotal, error)
}
