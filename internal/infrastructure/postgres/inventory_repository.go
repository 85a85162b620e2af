package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste la fila inicial de inventario. El constraint único
// (warehouse_id, product_id) y las FKs son los árbitros finales.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, warehouse_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.WarehouseID, inv.ProductID, inv.Quantity, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrWarehouseNotFound
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByWarehouseAndProduct obtiene la fila de inventario de un par (bodega, producto).
func (r *InventoryRepo) GetByWarehouseAndProduct(warehouseID, productID string) (*entity.Inventory, error) {
	query := `
		SELECT id, warehouse_id, product_id, quantity, created_at, updated_at
		FROM inventory WHERE warehouse_id = $1 AND product_id = $2`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, warehouseID, productID).Scan(
		&inv.ID, &inv.WarehouseID, &inv.ProductID, &inv.Quantity, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// ListByWarehouse lista el inventario de una bodega con paginación.
func (r *InventoryRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Inventory, error) {
	query := `
		SELECT id, warehouse_id, product_id, quantity, created_at, updated_at
		FROM inventory WHERE warehouse_id = $1
		ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory by warehouse: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.WarehouseID, &inv.ProductID, &inv.Quantity, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// ListByProductIDs devuelve todas las filas de inventario de los productos
// dados junto con la empresa dueña de cada bodega, en un solo query
// (retrieval en lote para el motor de alertas, nunca un fetch por fila).
func (r *InventoryRepo) ListByProductIDs(ctx context.Context, productIDs []string) ([]repository.InventoryRow, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT i.id, i.warehouse_id, w.name, i.product_id, i.quantity, w.company_id
		FROM inventory i
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE i.product_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list inventory by product ids: %w", err)
	}
	defer rows.Close()
	var result []repository.InventoryRow
	for rows.Next() {
		var row repository.InventoryRow
		if err := rows.Scan(&row.ID, &row.WarehouseID, &row.WarehouseName, &row.ProductID, &row.Quantity, &row.WarehouseCompanyID); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
