package postgres

import (
	"context"
	"fmt"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationSelect = `
		SELECT
			a.id, a.listing_id, a.job_seeker_id, a.status, a.applied_date, a.created_at, a.updated_at,
			l.title AS listing_title,
			c.name AS company_name,
			js.first_name || ' ' || js.last_name AS applicant_name
		FROM applications a
		LEFT JOIN listings l ON a.listing_id = l.id
		LEFT JOIN companies c ON l.company_id = c.id
		LEFT JOIN job_seekers js ON a.job_seeker_id = js.id`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var (
		app     domain.Application
		status  string
		applied time.Time
	)
	err := row.Scan(
		&app.ID, &app.ListingID, &app.JobSeekerID, &status, &applied, &app.CreatedAt, &app.UpdatedAt,
		&app.ListingTitle, &app.CompanyName, &app.ApplicantName,
	)
	if err != nil {
		return nil, err
	}
	app.Status = domain.ApplicationStatus(status)
	app.AppliedDate = toDate(applied)
	return &app, nil
}

func collectApplications(rows pgx.Rows) ([]domain.Application, error) {
	defer rows.Close()

	apps := make([]domain.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, mapError(err, "scan application")
		}
		apps = append(apps, *app)
	}
	return apps, mapError(rows.Err(), "fetch applications")
}

// Create inserts a new application
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (listing_id, job_seeker_id, status, applied_date, created_at, updated_at)
		VALUES ($1, $2, $3, COALESCE($4::date, CURRENT_DATE), $5, $6)
		RETURNING id, applied_date`

	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	var applied time.Time
	err := r.db.QueryRow(ctx, query,
		app.ListingID,
		app.JobSeekerID,
		string(app.Status),
		dateArg(app.AppliedDate),
		app.CreatedAt,
		app.UpdatedAt,
	).Scan(&app.ID, &applied)
	if err != nil {
		return mapError(err, "create application")
	}
	app.AppliedDate = toDate(applied)
	return nil
}

// GetByID retrieves an application by ID with joined listing and applicant data
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id))
	if err != nil {
		return nil, mapError(err, "get application")
	}
	return app, nil
}

// FetchBySeeker lists the applications a job seeker has submitted.
func (r *applicationRepo) FetchBySeeker(ctx context.Context, seekerID int64, limit, offset int) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx,
		applicationSelect+` WHERE a.job_seeker_id = $1 ORDER BY a.id LIMIT $2 OFFSET $3`,
		seekerID, limit, offset)
	if err != nil {
		return nil, mapError(err, "fetch applications by seeker")
	}
	return collectApplications(rows)
}

// FetchByRecruiter lists applications received on any listing the recruiter owns.
func (r *applicationRepo) FetchByRecruiter(ctx context.Context, recruiterID int64, limit, offset int) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx,
		applicationSelect+` WHERE l.recruiter_id = $1 ORDER BY a.id LIMIT $2 OFFSET $3`,
		recruiterID, limit, offset)
	if err != nil {
		return nil, mapError(err, "fetch applications by recruiter")
	}
	return collectApplications(rows)
}

// CheckExists checks if a job seeker has already applied to a listing
func (r *applicationRepo) CheckExists(ctx context.Context, listingID, seekerID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE listing_id = $1 AND job_seeker_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, listingID, seekerID).Scan(&exists); err != nil {
		return false, mapError(err, "check application")
	}
	return exists, nil
}

func (r *applicationRepo) Update(ctx context.Context, app *domain.Application) error {
	query := `UPDATE applications SET status = $2, applied_date = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, app.ID, string(app.Status), app.AppliedDate.Time, app.UpdatedAt)
	if err != nil {
		return mapError(err, "update application")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update application %d: %w", app.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete application")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete application %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
