package postgres

import (
	"context"
	"fmt"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

const companyColumns = `id, email, name, industry, location, description, website, created_at, updated_at`

func (r *companyRepo) Create(ctx context.Context, c *domain.Company) error {
	query := `INSERT INTO companies (email, name, industry, location, description, website, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		c.Email, c.Name, string(c.Industry), c.Location, c.Description, c.Website, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	return mapError(err, "create company")
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	var c domain.Company
	var industry string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Email, &c.Name, &industry, &c.Location, &c.Description, &c.Website, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "get company")
	}
	c.Industry = domain.Industry(industry)
	return &c, nil
}

func (r *companyRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapError(err, "fetch companies")
	}
	defer rows.Close()

	companies := make([]domain.Company, 0)
	for rows.Next() {
		var c domain.Company
		var industry string
		if err := rows.Scan(&c.ID, &c.Email, &c.Name, &industry, &c.Location, &c.Description, &c.Website, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, mapError(err, "scan company")
		}
		c.Industry = domain.Industry(industry)
		companies = append(companies, c)
	}
	return companies, mapError(rows.Err(), "fetch companies")
}

func (r *companyRepo) Update(ctx context.Context, c *domain.Company) error {
	query := `UPDATE companies
              SET email = $2, name = $3, industry = $4, location = $5, description = $6, website = $7, updated_at = $8
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		c.ID, c.Email, c.Name, string(c.Industry), c.Location, c.Description, c.Website, c.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "update company")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update company %d: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete company")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete company %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
