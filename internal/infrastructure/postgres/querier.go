package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae pool y transacción: los repositorios funcionan igual atados
// a *pgxpool.Pool o a pgx.Tx. Es lo que permite al TxRunner reutilizar los
// mismos adaptadores dentro de una tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
