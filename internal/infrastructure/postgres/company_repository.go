package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// List lista empresas con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
