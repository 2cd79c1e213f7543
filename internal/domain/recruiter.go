package domain

import (
	"context"
	"time"
)

type Recruiter struct {
	ID          int64     `json:"recruiter_id"`
	UserID      int64     `json:"user_id"`
	CompanyID   int64     `json:"company_id" validate:"required,gt=0"`
	FirstName   string    `json:"first_name" validate:"required,max=100,valid_name"`
	LastName    string    `json:"last_name" validate:"required,max=100,valid_name"`
	PhoneNumber string    `json:"phone_number" validate:"required,valid_phone"`
	Position    string    `json:"position" validate:"required,max=100"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RecruiterPatch struct {
	CompanyID   *int64
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Position    *string
}

func (p RecruiterPatch) Apply(r *Recruiter) {
	if p.CompanyID != nil {
		r.CompanyID = *p.CompanyID
	}
	if p.FirstName != nil {
		r.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		r.LastName = *p.LastName
	}
	if p.PhoneNumber != nil {
		r.PhoneNumber = *p.PhoneNumber
	}
	if p.Position != nil {
		r.Position = *p.Position
	}
}

type RecruiterRepository interface {
	Create(ctx context.Context, recruiter *Recruiter) error
	GetByID(ctx context.Context, id int64) (*Recruiter, error)
	GetByUserID(ctx context.Context, userID int64) (*Recruiter, error)
	Fetch(ctx context.Context, limit, offset int) ([]Recruiter, error)
	Update(ctx context.Context, recruiter *Recruiter) error
	Delete(ctx context.Context, id int64) error
}

type RecruiterUsecase interface {
	List(ctx context.Context, page Pagination) ([]Recruiter, error)
	Get(ctx context.Context, id int64) (*Recruiter, error)
	Create(ctx context.Context, email string, recruiter *Recruiter) error
	Update(ctx context.Context, email string, id int64, patch RecruiterPatch) (*Recruiter, error)
	Delete(ctx context.Context, email string, id int64) error
}
