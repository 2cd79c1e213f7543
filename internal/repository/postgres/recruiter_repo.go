package postgres

import (
	"context"
	"fmt"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recruiterRepo struct {
	db *pgxpool.Pool
}

func NewRecruiterRepository(db *pgxpool.Pool) domain.RecruiterRepository {
	return &recruiterRepo{db: db}
}

const recruiterColumns = `id, user_id, company_id, first_name, last_name, phone_number, position, created_at, updated_at`

func scanRecruiter(row pgx.Row) (*domain.Recruiter, error) {
	var rec domain.Recruiter
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.CompanyID, &rec.FirstName, &rec.LastName,
		&rec.PhoneNumber, &rec.Position, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recruiterRepo) Create(ctx context.Context, rec *domain.Recruiter) error {
	query := `INSERT INTO recruiters (user_id, company_id, first_name, last_name, phone_number, position, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		rec.UserID, rec.CompanyID, rec.FirstName, rec.LastName, rec.PhoneNumber, rec.Position, rec.CreatedAt, rec.UpdatedAt,
	).Scan(&rec.ID)
	return mapError(err, "create recruiter")
}

func (r *recruiterRepo) GetByID(ctx context.Context, id int64) (*domain.Recruiter, error) {
	rec, err := scanRecruiter(r.db.QueryRow(ctx, `SELECT `+recruiterColumns+` FROM recruiters WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, "get recruiter")
	}
	return rec, nil
}

func (r *recruiterRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Recruiter, error) {
	rec, err := scanRecruiter(r.db.QueryRow(ctx, `SELECT `+recruiterColumns+` FROM recruiters WHERE user_id = $1`, userID))
	if err != nil {
		return nil, mapError(err, "get recruiter by user")
	}
	return rec, nil
}

func (r *recruiterRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Recruiter, error) {
	rows, err := r.db.Query(ctx, `SELECT `+recruiterColumns+` FROM recruiters ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapError(err, "fetch recruiters")
	}
	defer rows.Close()

	recruiters := make([]domain.Recruiter, 0)
	for rows.Next() {
		rec, err := scanRecruiter(rows)
		if err != nil {
			return nil, mapError(err, "scan recruiter")
		}
		recruiters = append(recruiters, *rec)
	}
	return recruiters, mapError(rows.Err(), "fetch recruiters")
}

func (r *recruiterRepo) Update(ctx context.Context, rec *domain.Recruiter) error {
	query := `UPDATE recruiters
              SET company_id = $2, first_name = $3, last_name = $4, phone_number = $5, position = $6, updated_at = $7
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		rec.ID, rec.CompanyID, rec.FirstName, rec.LastName, rec.PhoneNumber, rec.Position, rec.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "update recruiter")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update recruiter %d: %w", rec.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *recruiterRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recruiters WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete recruiter")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete recruiter %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
