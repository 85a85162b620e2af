package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El SKU es único global
// (comparación exacta, sensible a mayúsculas); el constraint de la tabla
// es el árbitro final ante escrituras concurrentes.
// El stock por bodega vive en Inventory, nunca aquí.
type Product struct {
	ID        string
	Name      string
	SKU       string
	Price     decimal.Decimal // precio de venta, nunca negativo
	IsBundle  bool            // compuesto de otros productos (relación pasiva en product_components)
	Threshold *int64          // umbral de stock bajo; nil = usar el default del sistema
	CreatedAt time.Time
	UpdatedAt time.Time
}
