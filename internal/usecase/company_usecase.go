package usecase

import (
	"context"
	"errors"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type companyUsecase struct {
	principals
	companyRepo domain.CompanyRepository
	validate    *validator.Validate
}

func NewCompanyUsecase(userRepo domain.UserRepository, companyRepo domain.CompanyRepository, validate *validator.Validate) domain.CompanyUsecase {
	return &companyUsecase{
		principals:  principals{users: userRepo},
		companyRepo: companyRepo,
		validate:    validate,
	}
}

func (u *companyUsecase) requireRecruiter(ctx context.Context, email, action string) error {
	user, err := u.resolve(ctx, email)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleRecruiter {
		return apperror.Forbidden("Only active recruiters can " + action + " a company.")
	}
	return nil
}

func (u *companyUsecase) List(ctx context.Context, page domain.Pagination) ([]domain.Company, error) {
	page = page.Normalize()
	companies, err := u.companyRepo.Fetch(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return companies, nil
}

func (u *companyUsecase) Get(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Company not found")
	}
	return company, nil
}

func (u *companyUsecase) Create(ctx context.Context, email string, company *domain.Company) error {
	if err := u.requireRecruiter(ctx, email, "create"); err != nil {
		return err
	}
	if err := validateStruct(u.validate, company); err != nil {
		return err
	}

	company.CreatedAt = time.Now()
	company.UpdatedAt = company.CreatedAt
	if err := u.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return apperror.Conflict("Company email already registered")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *companyUsecase) Update(ctx context.Context, email string, id int64, patch domain.CompanyPatch) (*domain.Company, error) {
	if err := u.requireRecruiter(ctx, email, "update"); err != nil {
		return nil, err
	}
	company, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(company)
	if err := validateStruct(u.validate, company); err != nil {
		return nil, err
	}
	company.UpdatedAt = time.Now()

	if err := u.companyRepo.Update(ctx, company); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict("Company email already registered")
		}
		return nil, notFoundOr(err, "Company not found")
	}
	return company, nil
}

func (u *companyUsecase) Delete(ctx context.Context, email string, id int64) error {
	if err := u.requireRecruiter(ctx, email, "delete"); err != nil {
		return err
	}
	if err := u.companyRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Company not found")
	}
	return nil
}
