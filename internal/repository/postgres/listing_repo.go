package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type listingRepo struct {
	db *pgxpool.Pool
}

func NewListingRepository(db *pgxpool.Pool) domain.ListingRepository {
	return &listingRepo{db: db}
}

const listingColumns = `id, recruiter_id, company_id, title, description, location, salary_range, employment,
	posted_date, application_deadline, is_active, created_at, updated_at`

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var (
		l                            domain.Listing
		location, salary, employment string
		status                       string
		posted, deadline             time.Time
	)
	err := row.Scan(
		&l.ID, &l.RecruiterID, &l.CompanyID, &l.Title, &l.Description, &location, &salary, &employment,
		&posted, &deadline, &status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.Location = domain.WorkMode(location)
	l.SalaryRange = domain.SalaryRange(salary)
	l.Employment = domain.EmploymentType(employment)
	l.IsActive = domain.ListingStatus(status)
	l.PostedDate = toDate(posted)
	l.ApplicationDeadline = toDate(deadline)
	return &l, nil
}

func collectListings(rows pgx.Rows) ([]domain.Listing, error) {
	defer rows.Close()

	listings := make([]domain.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, mapError(err, "scan listing")
		}
		listings = append(listings, *l)
	}
	return listings, mapError(rows.Err(), "fetch listings")
}

func (r *listingRepo) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (recruiter_id, company_id, title, description, location, salary_range, employment,
                  posted_date, application_deadline, is_active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8::date, CURRENT_DATE), $9, $10, $11, $12)
              RETURNING id, posted_date`
	var posted time.Time
	err := r.db.QueryRow(ctx, query,
		l.RecruiterID, l.CompanyID, l.Title, l.Description,
		string(l.Location), string(l.SalaryRange), string(l.Employment),
		dateArg(l.PostedDate), l.ApplicationDeadline.Time, string(l.IsActive),
		l.CreatedAt, l.UpdatedAt,
	).Scan(&l.ID, &posted)
	if err != nil {
		return mapError(err, "create listing")
	}
	l.PostedDate = toDate(posted)
	return nil
}

func (r *listingRepo) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	l, err := scanListing(r.db.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, "get listing")
	}
	return l, nil
}

func (r *listingRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Listing, error) {
	rows, err := r.db.Query(ctx, `SELECT `+listingColumns+` FROM listings ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapError(err, "fetch listings")
	}
	return collectListings(rows)
}

// Search matches title and location case-insensitively by substring and employment exactly.
func (r *listingRepo) Search(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.Title != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", argIndex))
		args = append(args, "%"+escapeLike(filter.Title)+"%")
		argIndex++
	}
	if filter.EmploymentType != "" {
		conditions = append(conditions, fmt.Sprintf("employment = $%d", argIndex))
		args = append(args, filter.EmploymentType)
		argIndex++
	}
	if filter.Location != "" {
		conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", argIndex))
		args = append(args, "%"+escapeLike(filter.Location)+"%")
	}

	query := `SELECT ` + listingColumns + ` FROM listings`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "search listings")
	}
	return collectListings(rows)
}

func (r *listingRepo) Update(ctx context.Context, l *domain.Listing) error {
	query := `UPDATE listings
              SET title = $2, description = $3, application_deadline = $4, is_active = $5, updated_at = $6
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		l.ID, l.Title, l.Description, l.ApplicationDeadline.Time, string(l.IsActive), l.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "update listing")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update listing %d: %w", l.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *listingRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete listing")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete listing %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
