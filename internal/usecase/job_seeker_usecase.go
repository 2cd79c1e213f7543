package usecase

import (
	"context"
	"errors"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobSeekerUsecase struct {
	principals
	seekerRepo domain.JobSeekerRepository
	validate   *validator.Validate
}

func NewJobSeekerUsecase(userRepo domain.UserRepository, seekerRepo domain.JobSeekerRepository, validate *validator.Validate) domain.JobSeekerUsecase {
	return &jobSeekerUsecase{
		principals: principals{users: userRepo},
		seekerRepo: seekerRepo,
		validate:   validate,
	}
}

func (u *jobSeekerUsecase) List(ctx context.Context, page domain.Pagination) ([]domain.JobSeeker, error) {
	page = page.Normalize()
	seekers, err := u.seekerRepo.Fetch(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return seekers, nil
}

func (u *jobSeekerUsecase) Get(ctx context.Context, id int64) (*domain.JobSeeker, error) {
	seeker, err := u.seekerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Job Seeker not found")
	}
	return seeker, nil
}

func (u *jobSeekerUsecase) Completion(ctx context.Context, id int64) (*domain.ProfileCompletion, error) {
	seeker, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	completion := domain.ScoreCompletion(seeker)
	return &completion, nil
}

func (u *jobSeekerUsecase) Create(ctx context.Context, email string, seeker *domain.JobSeeker) error {
	user, err := u.resolve(ctx, email)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleJobSeeker {
		return apperror.Forbidden("Only job seekers can create a job seeker profile.")
	}

	_, err = u.seekerRepo.GetByUserID(ctx, user.ID)
	switch {
	case err == nil:
		return apperror.Conflict("Job Seeker profile already exists for this user.")
	case !errors.Is(err, domain.ErrNotFound):
		return apperror.Internal(err)
	}

	seeker.UserID = user.ID
	if err := validateStruct(u.validate, seeker); err != nil {
		return err
	}

	seeker.CreatedAt = time.Now()
	seeker.UpdatedAt = seeker.CreatedAt
	if err := u.seekerRepo.Create(ctx, seeker); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return apperror.Conflict("Job Seeker profile already exists for this user.")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobSeekerUsecase) owned(ctx context.Context, email string, id int64) (*domain.JobSeeker, error) {
	user, err := u.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	seeker, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if seeker.UserID != user.ID {
		return nil, apperror.Forbidden("Cannot modify another user's profile.")
	}
	return seeker, nil
}

func (u *jobSeekerUsecase) Update(ctx context.Context, email string, id int64, patch domain.JobSeekerPatch) (*domain.JobSeeker, error) {
	seeker, err := u.owned(ctx, email, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(seeker)
	if err := validateStruct(u.validate, seeker); err != nil {
		return nil, err
	}
	seeker.UpdatedAt = time.Now()

	if err := u.seekerRepo.Update(ctx, seeker); err != nil {
		return nil, notFoundOr(err, "Job Seeker not found")
	}
	return seeker, nil
}

func (u *jobSeekerUsecase) Delete(ctx context.Context, email string, id int64) error {
	if _, err := u.owned(ctx, email, id); err != nil {
		return err
	}
	if err := u.seekerRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Job Seeker not found")
	}
	return nil
}
