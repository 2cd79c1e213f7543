package domain

import (
	"context"
	"time"
)

type WorkMode string

const (
	WorkModeOnSite WorkMode = "On_site"
	WorkModeRemote WorkMode = "Remote"
	WorkModeHybrid WorkMode = "Hybrid"
)

func (m WorkMode) Valid() bool {
	return m == WorkModeOnSite || m == WorkModeRemote || m == WorkModeHybrid
}

type SalaryRange string

const (
	SalaryRange3To5   SalaryRange = "3L-5L"
	SalaryRange5To9   SalaryRange = "5L-9L"
	SalaryRange9To15  SalaryRange = "9L-15L"
	SalaryRange15To22 SalaryRange = "15L-22L"
)

func (r SalaryRange) Valid() bool {
	switch r {
	case SalaryRange3To5, SalaryRange5To9, SalaryRange9To15, SalaryRange15To22:
		return true
	}
	return false
}

type EmploymentType string

const (
	EmploymentFullTime       EmploymentType = "Full-Time"
	EmploymentPartTime       EmploymentType = "Part-Time"
	EmploymentApprenticeship EmploymentType = "Apprenticeship"
	EmploymentIntern         EmploymentType = "Intern"
)

func (e EmploymentType) Valid() bool {
	switch e {
	case EmploymentFullTime, EmploymentPartTime, EmploymentApprenticeship, EmploymentIntern:
		return true
	}
	return false
}

type ListingStatus string

const (
	ListingStillAccepting ListingStatus = "Still accepting"
	ListingExpired        ListingStatus = "Expired"
)

func (s ListingStatus) Valid() bool {
	return s == ListingStillAccepting || s == ListingExpired
}

type Listing struct {
	ID                  int64          `json:"listing_id"`
	RecruiterID         int64          `json:"recruiter_id"`
	CompanyID           int64          `json:"company_id" validate:"required,gt=0"`
	Title               string         `json:"title" validate:"required,max=200,no_emoji"`
	Description         string         `json:"description" validate:"required"`
	Location            WorkMode       `json:"location" validate:"required,enum"`
	SalaryRange         SalaryRange    `json:"salary_range" validate:"required,enum"`
	Employment          EmploymentType `json:"employment" validate:"required,enum"`
	PostedDate          Date           `json:"posted_date"`
	ApplicationDeadline Date           `json:"application_deadline"`
	IsActive            ListingStatus  `json:"is_active" validate:"required,enum"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

type ListingPatch struct {
	ApplicationDeadline *Date
	IsActive            *ListingStatus
	Title               *string
	Description         *string
}

func (p ListingPatch) Apply(l *Listing) {
	if p.ApplicationDeadline != nil {
		l.ApplicationDeadline = *p.ApplicationDeadline
	}
	if p.IsActive != nil {
		l.IsActive = *p.IsActive
	}
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
}

// ListingFilter narrows a listing search. Empty fields are ignored.
type ListingFilter struct {
	Title          string `form:"title"`
	EmploymentType string `form:"employment_type"`
	Location       string `form:"location"`
}

func (f ListingFilter) IsEmpty() bool {
	return f.Title == "" && f.EmploymentType == "" && f.Location == ""
}

type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) error
	GetByID(ctx context.Context, id int64) (*Listing, error)
	Fetch(ctx context.Context, limit, offset int) ([]Listing, error)
	Search(ctx context.Context, filter ListingFilter) ([]Listing, error)
	Update(ctx context.Context, listing *Listing) error
	Delete(ctx context.Context, id int64) error
}

type ListingUsecase interface {
	List(ctx context.Context, page Pagination) ([]Listing, error)
	Get(ctx context.Context, id int64) (*Listing, error)
	Search(ctx context.Context, filter ListingFilter) ([]Listing, error)
	Create(ctx context.Context, email string, listing *Listing) error
	Update(ctx context.Context, email string, id int64, patch ListingPatch) (*Listing, error)
	Delete(ctx context.Context, email string, id int64) error
}
