package repository

import (
	"context"

	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
)

// InventoryRow resultado crudo para el motor de alertas: fila de inventario
// con la empresa dueña de la bodega ya resuelta (join con warehouses).
// El motor vuelve a verificar WarehouseCompanyID por candidato; el scoping
// nunca se asume del query que lo trajo.
type InventoryRow struct {
	ID                 string
	WarehouseID        string
	WarehouseName      string
	ProductID          string
	Quantity           int64
	WarehouseCompanyID string
}

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
type InventoryRepository interface {
	// Create persiste la fila inicial de inventario. Se usa dentro de la
	// transacción del registro de producto (TxRunner).
	Create(inv *entity.Inventory) error
	GetByWarehouseAndProduct(warehouseID, productID string) (*entity.Inventory, error)
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Inventory, error)

	// ListByProductIDs devuelve en un solo query todas las filas de inventario
	// de los productos dados, junto con la empresa dueña de cada bodega.
	ListByProductIDs(ctx context.Context, productIDs []string) ([]InventoryRow, error)
}
