package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/alerts"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/catalog"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

// Ensure TxRunner implements catalog.TxRunner and alerts.ReadTxRunner.
var _ catalog.TxRunner = (*TxRunner)(nil)
var _ alerts.ReadTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// El Rollback diferido garantiza que ningún camino de error deje la tx abierta;
// Commit solo ocurre si fn retorna nil.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción de escritura para el registro de producto:
// producto e inventario inicial se insertan con los repos atados a la tx,
// y ambas filas persisten o ninguna.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	inventoryRepo := NewInventoryRepository(tx)

	if err := fn(productRepo, inventoryRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			// Constraint único detectado recién al commit (carrera de SKU):
			// mismo tratamiento que el pre-chequeo.
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRead inicia una transacción de solo lectura para el motor de alertas:
// todas las lecturas de una invocación comparten snapshot.
func (r *TxRunner) RunRead(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return fmt.Errorf("begin read-only transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	inventoryRepo := NewInventoryRepository(tx)
	productRepo := NewProductRepository(tx)
	supplierRepo := NewSupplierRepository(tx)

	if err := fn(saleRepo, inventoryRepo, productRepo, supplierRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit read-only transaction: %w", err)
	}
	return nil
}
