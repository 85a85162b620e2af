package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL
// (usable con pool o tx). Las ventas son append-only: sin Update ni Delete.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, quantity, sale_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.Quantity, sale.SaleDate, sale.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListRecent lista ventas ordenadas por fecha descendente con paginación.
func (r *SaleRepo) ListRecent(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, product_id, quantity, sale_date, created_at
		FROM sales ORDER BY sale_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.SaleDate, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SumQuantityByProductSince agrega las cantidades vendidas por producto desde
// la fecha dada. Se apoya en el índice sobre sales(sale_date).
func (r *SaleRepo) SumQuantityByProductSince(ctx context.Context, since time.Time) ([]repository.ProductSalesTotal, error) {
	query := `
		SELECT product_id, SUM(quantity)
		FROM sales
		WHERE sale_date >= $1
		GROUP BY product_id`
	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("sum sales by product: %w", err)
	}
	defer rows.Close()
	var totals []repository.ProductSalesTotal
	for rows.Next() {
		var t repository.ProductSalesTotal
		if err := rows.Scan(&t.ProductID, &t.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan sales total: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
