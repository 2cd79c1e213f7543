package usecase

import (
	"context"
	"errors"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type recruiterUsecase struct {
	principals
	recruiterRepo domain.RecruiterRepository
	companyRepo   domain.CompanyRepository
	validate      *validator.Validate
}

func NewRecruiterUsecase(
	userRepo domain.UserRepository,
	recruiterRepo domain.RecruiterRepository,
	companyRepo domain.CompanyRepository,
	validate *validator.Validate,
) domain.RecruiterUsecase {
	return &recruiterUsecase{
		principals:    principals{users: userRepo},
		recruiterRepo: recruiterRepo,
		companyRepo:   companyRepo,
		validate:      validate,
	}
}

func (u *recruiterUsecase) List(ctx context.Context, page domain.Pagination) ([]domain.Recruiter, error) {
	page = page.Normalize()
	recruiters, err := u.recruiterRepo.Fetch(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return recruiters, nil
}

func (u *recruiterUsecase) Get(ctx context.Context, id int64) (*domain.Recruiter, error) {
	rec, err := u.recruiterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Recruiter not found")
	}
	return rec, nil
}

func (u *recruiterUsecase) ensureCompany(ctx context.Context, id int64) error {
	if _, err := u.companyRepo.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "Company not found")
	}
	return nil
}

func (u *recruiterUsecase) Create(ctx context.Context, email string, rec *domain.Recruiter) error {
	user, err := u.resolve(ctx, email)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleRecruiter {
		return apperror.Forbidden("Only recruiters can create a recruiter profile.")
	}

	_, err = u.recruiterRepo.GetByUserID(ctx, user.ID)
	switch {
	case err == nil:
		return apperror.Conflict("Recruiter profile already exists for this user.")
	case !errors.Is(err, domain.ErrNotFound):
		return apperror.Internal(err)
	}

	rec.UserID = user.ID
	if err := validateStruct(u.validate, rec); err != nil {
		return err
	}
	if err := u.ensureCompany(ctx, rec.CompanyID); err != nil {
		return err
	}

	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	if err := u.recruiterRepo.Create(ctx, rec); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return apperror.Conflict("Recruiter profile already exists for this user.")
		}
		return notFoundOr(err, "Company not found")
	}
	return nil
}

// owned loads a recruiter profile and checks it belongs to the caller.
func (u *recruiterUsecase) owned(ctx context.Context, email string, id int64) (*domain.Recruiter, error) {
	user, err := u.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	rec, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.UserID != user.ID {
		return nil, apperror.Forbidden("Cannot modify another user's profile.")
	}
	return rec, nil
}

func (u *recruiterUsecase) Update(ctx context.Context, email string, id int64, patch domain.RecruiterPatch) (*domain.Recruiter, error) {
	rec, err := u.owned(ctx, email, id)
	if err != nil {
		return nil, err
	}

	if patch.CompanyID != nil && *patch.CompanyID != rec.CompanyID {
		if err := u.ensureCompany(ctx, *patch.CompanyID); err != nil {
			return nil, err
		}
	}
	patch.Apply(rec)
	if err := validateStruct(u.validate, rec); err != nil {
		return nil, err
	}
	rec.UpdatedAt = time.Now()

	if err := u.recruiterRepo.Update(ctx, rec); err != nil {
		return nil, notFoundOr(err, "Recruiter not found")
	}
	return rec, nil
}

func (u *recruiterUsecase) Delete(ctx context.Context, email string, id int64) error {
	if _, err := u.owned(ctx, email, id); err != nil {
		return err
	}
	if err := u.recruiterRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Recruiter not found")
	}
	return nil
}
