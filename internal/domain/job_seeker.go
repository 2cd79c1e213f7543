package domain

import (
	"context"
	"time"
)

// JobSeeker is the candidate profile owned by a user with RoleJobSeeker.
type JobSeeker struct {
	ID              int64     `json:"job_seeker_id"`
	UserID          int64     `json:"user_id"`
	FirstName       string    `json:"first_name" validate:"required,max=100,valid_name"`
	LastName        string    `json:"last_name" validate:"required,max=100,valid_name"`
	DesiredJobTitle string    `json:"desired_job_title" validate:"required,max=150,no_emoji"`
	PhoneNumber     string    `json:"phone_number" validate:"required,valid_phone"`
	CurrentSalary   int64     `json:"current_salary" validate:"gte=0"`
	Location        string    `json:"location" validate:"required,max=255"`
	PastExperience  *string   `json:"past_experience" validate:"omitempty,max=255"`
	SkillSet        *string   `json:"skill_set" validate:"omitempty,max=255"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type JobSeekerPatch struct {
	FirstName       *string
	LastName        *string
	DesiredJobTitle *string
	PhoneNumber     *string
	CurrentSalary   *int64
	Location        *string
	PastExperience  *string
	SkillSet        *string
}

func (p JobSeekerPatch) Apply(s *JobSeeker) {
	if p.FirstName != nil {
		s.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		s.LastName = *p.LastName
	}
	if p.DesiredJobTitle != nil {
		s.DesiredJobTitle = *p.DesiredJobTitle
	}
	if p.PhoneNumber != nil {
		s.PhoneNumber = *p.PhoneNumber
	}
	if p.CurrentSalary != nil {
		s.CurrentSalary = *p.CurrentSalary
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.PastExperience != nil {
		s.PastExperience = p.PastExperience
	}
	if p.SkillSet != nil {
		s.SkillSet = p.SkillSet
	}
}

type JobSeekerRepository interface {
	Create(ctx context.Context, seeker *JobSeeker) error
	GetByID(ctx context.Context, id int64) (*JobSeeker, error)
	GetByUserID(ctx context.Context, userID int64) (*JobSeeker, error)
	Fetch(ctx context.Context, limit, offset int) ([]JobSeeker, error)
	Update(ctx context.Context, seeker *JobSeeker) error
	Delete(ctx context.Context, id int64) error
}

type JobSeekerUsecase interface {
	List(ctx context.Context, page Pagination) ([]JobSeeker, error)
	Get(ctx context.Context, id int64) (*JobSeeker, error)
	Completion(ctx context.Context, id int64) (*ProfileCompletion, error)
	Create(ctx context.Context, email string, seeker *JobSeeker) error
	Update(ctx context.Context, email string, id int64, patch JobSeekerPatch) (*JobSeeker, error)
	Delete(ctx context.Context, email string, id int64) error
}
