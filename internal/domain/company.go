package domain

import (
	"context"
	"time"
)

type Industry string

const (
	IndustryManufacturing         Industry = "Manufacturing"
	IndustryEducation             Industry = "Education"
	IndustryFinance               Industry = "Finance"
	IndustryConstruction          Industry = "Construction"
	IndustryChemical              Industry = "Chemical"
	IndustryElectronics           Industry = "Electronics"
	IndustryInformationTechnology Industry = "Information Technology"
)

func (i Industry) Valid() bool {
	switch i {
	case IndustryManufacturing, IndustryEducation, IndustryFinance, IndustryConstruction,
		IndustryChemical, IndustryElectronics, IndustryInformationTechnology:
		return true
	}
	return false
}

type Company struct {
	ID          int64     `json:"company_id"`
	Email       string    `json:"email" validate:"required,email"`
	Name        string    `json:"name" validate:"required,max=255,no_emoji"`
	Industry    Industry  `json:"industry" validate:"required,enum"`
	Location    string    `json:"location" validate:"required,max=255"`
	Description string    `json:"description" validate:"required"`
	Website     string    `json:"website" validate:"required,url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CompanyPatch carries the fields of a partial company update; nil means unchanged.
type CompanyPatch struct {
	Email       *string
	Name        *string
	Industry    *Industry
	Location    *string
	Description *string
	Website     *string
}

func (p CompanyPatch) Apply(c *Company) {
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Industry != nil {
		c.Industry = *p.Industry
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Website != nil {
		c.Website = *p.Website
	}
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	Fetch(ctx context.Context, limit, offset int) ([]Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id int64) error
}

type CompanyUsecase interface {
	List(ctx context.Context, page Pagination) ([]Company, error)
	Get(ctx context.Context, id int64) (*Company, error)
	Create(ctx context.Context, email string, company *Company) error
	Update(ctx context.Context, email string, id int64, patch CompanyPatch) (*Company, error)
	Delete(ctx context.Context, email string, id int64) error
}
