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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL
// (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactEmail, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `
		SELECT id, name, contact_email, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List lista proveedores con paginación.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, name, contact_email, created_at, updated_at
		FROM suppliers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// LinkProduct asocia un proveedor con un producto. ON CONFLICT DO NOTHING
// hace la asociación idempotente.
func (r *SupplierRepo) LinkProduct(supplierID, productID string) error {
	query := `
		INSERT INTO product_suppliers (supplier_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (supplier_id, product_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, supplierID, productID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("link supplier to product: %w", err)
	}
	return nil
}

// GetPrimaryByProductIDs resuelve en lote el proveedor por producto.
// DISTINCT ON + ORDER BY s.id aplica la regla determinista (menor id),
// nunca el orden arbitrario de almacenamiento.
func (r *SupplierRepo) GetPrimaryByProductIDs(ctx context.Context, productIDs []string) (map[string]*entity.Supplier, error) {
	result := make(map[string]*entity.Supplier, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT DISTINCT ON (ps.product_id)
			ps.product_id, s.id, s.name, s.contact_email, s.created_at, s.updated_at
		FROM product_suppliers ps
		JOIN suppliers s ON s.id = ps.supplier_id
		WHERE ps.product_id = ANY($1)
		ORDER BY ps.product_id, s.id`
	rows, err := r.q.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("get suppliers by product ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var productID string
		var s entity.Supplier
		if err := rows.Scan(&productID, &s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		result[productID] = &s
	}
	return result, rows.Err()
}
