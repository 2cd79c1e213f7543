package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusReviewed ApplicationStatus = "Reviewed"
	ApplicationStatusAccepted ApplicationStatus = "Accepted"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application is a job seeker's application to a listing.
type Application struct {
	ID          int64             `json:"application_id"`
	ListingID   int64             `json:"listing_id"`
	JobSeekerID int64             `json:"job_seeker_id"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate Date              `json:"applied_date"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	// Joined data for list responses
	ListingTitle  *string `json:"listing_title,omitempty"`
	CompanyName   *string `json:"company_name,omitempty"`
	ApplicantName *string `json:"applicant_name,omitempty"`
}

type ApplicationPatch struct {
	Status      *ApplicationStatus
	AppliedDate *Date
}

func (p ApplicationPatch) Apply(a *Application) {
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.AppliedDate != nil {
		a.AppliedDate = *p.AppliedDate
	}
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	FetchBySeeker(ctx context.Context, seekerID int64, limit, offset int) ([]Application, error)
	FetchByRecruiter(ctx context.Context, recruiterID int64, limit, offset int) ([]Application, error)
	CheckExists(ctx context.Context, listingID, seekerID int64) (bool, error)
	Update(ctx context.Context, app *Application) error
	Delete(ctx context.Context, id int64) error
}

type ApplicationUsecase interface {
	List(ctx context.Context, email string, page Pagination) ([]Application, error)
	Get(ctx context.Context, id int64) (*Application, error)
	Apply(ctx context.Context, email string, listingID, seekerID int64) (*Application, error)
	Update(ctx context.Context, email string, id int64, patch ApplicationPatch) (*Application, error)
	Withdraw(ctx context.Context, email string, id int64) error
}
