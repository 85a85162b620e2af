package repository

import (
	"context"

	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)

	// LinkProduct asocia un proveedor con un producto (product_suppliers).
	// Idempotente: asociar dos veces no duplica la fila.
	LinkProduct(supplierID, productID string) error

	// GetPrimaryByProductIDs resuelve en lote el proveedor a mostrar por
	// producto. Regla determinista: el de menor id, independiente del orden
	// de almacenamiento. Productos sin proveedor no aparecen en el mapa.
	GetPrimaryByProductIDs(ctx context.Context, productIDs []string) (map[string]*entity.Supplier, error)
}
