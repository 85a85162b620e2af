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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. El índice único de sku es el árbitro
// final: una violación se reporta como ErrDuplicateSKU.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, sku, price, is_bundle, threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Price,
		product.IsBundle, product.Threshold, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, sku, price, is_bundle, threshold, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Price, &p.IsBundle, &p.Threshold, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetBySKU obtiene un producto por SKU (comparación exacta, sensible a mayúsculas).
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `
		SELECT id, name, sku, price, is_bundle, threshold, created_at, updated_at
		FROM products WHERE sku = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, sku).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Price, &p.IsBundle, &p.Threshold, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}

// GetByIDs obtiene productos en lote por conjunto de ids (un solo query).
func (r *ProductRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	result := make(map[string]*entity.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	query := `
		SELECT id, name, sku, price, is_bundle, threshold, created_at, updated_at
		FROM products WHERE id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get products by ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.IsBundle, &p.Threshold, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		result[p.ID] = &p
	}
	return result, rows.Err()
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, sku, price, is_bundle, threshold, created_at, updated_at
		FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.IsBundle, &p.Threshold, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
