package postgres

import (
	"context"
	"fmt"

	"jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobSeekerRepo struct {
	db *pgxpool.Pool
}

func NewJobSeekerRepository(db *pgxpool.Pool) domain.JobSeekerRepository {
	return &jobSeekerRepo{db: db}
}

const jobSeekerColumns = `id, user_id, first_name, last_name, desired_job_title, phone_number,
	current_salary, location, past_experience, skill_set, created_at, updated_at`

func scanJobSeeker(row pgx.Row) (*domain.JobSeeker, error) {
	var s domain.JobSeeker
	err := row.Scan(
		&s.ID, &s.UserID, &s.FirstName, &s.LastName, &s.DesiredJobTitle, &s.PhoneNumber,
		&s.CurrentSalary, &s.Location, &s.PastExperience, &s.SkillSet, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *jobSeekerRepo) Create(ctx context.Context, s *domain.JobSeeker) error {
	query := `INSERT INTO job_seekers (user_id, first_name, last_name, desired_job_title, phone_number,
                  current_salary, location, past_experience, skill_set, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		s.UserID, s.FirstName, s.LastName, s.DesiredJobTitle, s.PhoneNumber,
		s.CurrentSalary, s.Location, s.PastExperience, s.SkillSet, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	return mapError(err, "create job seeker")
}

func (r *jobSeekerRepo) GetByID(ctx context.Context, id int64) (*domain.JobSeeker, error) {
	s, err := scanJobSeeker(r.db.QueryRow(ctx, `SELECT `+jobSeekerColumns+` FROM job_seekers WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, "get job seeker")
	}
	return s, nil
}

func (r *jobSeekerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.JobSeeker, error) {
	s, err := scanJobSeeker(r.db.QueryRow(ctx, `SELECT `+jobSeekerColumns+` FROM job_seekers WHERE user_id = $1`, userID))
	if err != nil {
		return nil, mapError(err, "get job seeker by user")
	}
	return s, nil
}

func (r *jobSeekerRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.JobSeeker, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobSeekerColumns+` FROM job_seekers ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapError(err, "fetch job seekers")
	}
	defer rows.Close()

	seekers := make([]domain.JobSeeker, 0)
	for rows.Next() {
		s, err := scanJobSeeker(rows)
		if err != nil {
			return nil, mapError(err, "scan job seeker")
		}
		seekers = append(seekers, *s)
	}
	return seekers, mapError(rows.Err(), "fetch job seekers")
}

func (r *jobSeekerRepo) Update(ctx context.Context, s *domain.JobSeeker) error {
	query := `UPDATE job_seekers
              SET first_name = $2, last_name = $3, desired_job_title = $4, phone_number = $5,
                  current_salary = $6, location = $7, past_experience = $8, skill_set = $9, updated_at = $10
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		s.ID, s.FirstName, s.LastName, s.DesiredJobTitle, s.PhoneNumber,
		s.CurrentSalary, s.Location, s.PastExperience, s.SkillSet, s.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "update job seeker")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update job seeker %d: %w", s.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *jobSeekerRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM job_seekers WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete job seeker")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete job seeker %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
