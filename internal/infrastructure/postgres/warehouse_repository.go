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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una nueva bodega. La FK a companies es el árbitro final.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, company_id, name, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.CompanyID, warehouse.Name, warehouse.Location,
		warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	query := `
		SELECT id, company_id, name, location, created_at, updated_at
		FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.CompanyID, &w.Name, &w.Location, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// ListByCompany lista bodegas por empresa con paginación.
func (r *WarehouseRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	query := `
		SELECT id, company_id, name, location, created_at, updated_at
		FROM warehouses WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.CompanyID, &w.Name, &w.Location, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
