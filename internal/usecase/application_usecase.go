package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/logger"
)

// ApplicationEvents receives application signals for metrics.
type ApplicationEvents interface {
	RecordApplicationSubmitted()
}

type applicationUsecase struct {
	principals
	appRepo       domain.ApplicationRepository
	listingRepo   domain.ListingRepository
	seekerRepo    domain.JobSeekerRepository
	recruiterRepo domain.RecruiterRepository
	events        ApplicationEvents
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	userRepo domain.UserRepository,
	appRepo domain.ApplicationRepository,
	listingRepo domain.ListingRepository,
	seekerRepo domain.JobSeekerRepository,
	recruiterRepo domain.RecruiterRepository,
	events ApplicationEvents,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		principals:    principals{users: userRepo},
		appRepo:       appRepo,
		listingRepo:   listingRepo,
		seekerRepo:    seekerRepo,
		recruiterRepo: recruiterRepo,
		events:        events,
	}
}

// List returns the caller's applications: a job seeker sees what they submitted,
// a recruiter sees what arrived on their listings. No profile means no applications.
func (u *applicationUsecase) List(ctx context.Context, email string, page domain.Pagination) ([]domain.Application, error) {
	user, err := u.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	page = page.Normalize()

	var apps []domain.Application
	switch user.Role {
	case domain.RoleJobSeeker:
		seeker, err := u.seekerRepo.GetByUserID(ctx, user.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.Application{}, nil
		}
		if err != nil {
			return nil, apperror.Internal(err)
		}
		apps, err = u.appRepo.FetchBySeeker(ctx, seeker.ID, page.Limit, page.Skip)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	case domain.RoleRecruiter:
		rec, err := u.recruiterRepo.GetByUserID(ctx, user.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.Application{}, nil
		}
		if err != nil {
			return nil, apperror.Internal(err)
		}
		apps, err = u.appRepo.FetchByRecruiter(ctx, rec.ID, page.Limit, page.Skip)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	default:
		return []domain.Application{}, nil
	}
	return apps, nil
}

func (u *applicationUsecase) Get(ctx context.Context, id int64) (*domain.Application, error) {
	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Application not found")
	}
	return app, nil
}

// Apply submits an application for the caller. seekerID may be zero, in which
// case the caller's own profile is used.
func (u *applicationUsecase) Apply(ctx context.Context, email string, listingID, seekerID int64) (*domain.Application, error) {
	user, err := u.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleJobSeeker {
		return nil, apperror.Forbidden("Only job seekers can apply to listings.")
	}

	own, err := u.seekerRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, notFoundOr(err, "Job Seeker profile not found. Create one before applying.")
	}
	if seekerID == 0 {
		seekerID = own.ID
	}
	if seekerID != own.ID {
		if _, err := u.seekerRepo.GetByID(ctx, seekerID); err != nil {
			return nil, notFoundOr(err, "Job Seeker not found")
		}
		return nil, apperror.Forbidden("Cannot apply on behalf of another job seeker.")
	}

	listing, err := u.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, notFoundOr(err, "Listing not found")
	}
	if listing.IsActive == domain.ListingExpired {
		return nil, apperror.BadRequest("Listing is no longer accepting applications.")
	}

	duplicate := apperror.Conflict(fmt.Sprintf("Job Seeker with ID %d has already applied to Listing ID %d.", seekerID, listingID))
	exists, err := u.appRepo.CheckExists(ctx, listingID, seekerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, duplicate
	}

	now := time.Now()
	app := &domain.Application{
		ListingID:   listingID,
		JobSeekerID: seekerID,
		Status:      domain.ApplicationStatusPending,
		AppliedDate: domain.NewDate(now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, duplicate
		}
		return nil, notFoundOr(err, "Listing not found")
	}

	if u.events != nil {
		u.events.RecordApplicationSubmitted()
	}
	logger.Get().Info().
		Int64("application_id", app.ID).
		Int64("listing_id", listingID).
		Int64("job_seeker_id", seekerID).
		Msg("application submitted")
	return app, nil
}

// Update changes an application's status. Allowed for the applicant and for the
// recruiter who owns the listing.
func (u *applicationUsecase) Update(ctx context.Context, email string, id int64, patch domain.ApplicationPatch) (*domain.Application, error) {
	user, err := u.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	app, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed, err := u.canUpdate(ctx, user, app)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperror.Forbidden("Cannot modify another user's application.")
	}

	if patch.Status != nil && !patch.Status.Valid() {
		return nil, apperror.BadRequest("Status must be one of: Pending, Reviewed, Accepted, Rejected")
	}
	patch.Apply(app)
	app.UpdatedAt = time.Now()

	if err := u.appRepo.Update(ctx, app); err != nil {
		return nil, notFoundOr(err, "Application not found")
	}
	return app, nil
}

func (u *applicationUsecase) canUpdate(ctx context.Context, user *domain.User, app *domain.Application) (bool, error) {
	switch user.Role {
	case domain.RoleJobSeeker:
		seeker, err := u.seekerRepo.GetByUserID(ctx, user.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, apperror.Internal(err)
		}
		return seeker.ID == app.JobSeekerID, nil
	case domain.RoleRecruiter:
		rec, err := u.recruiterRepo.GetByUserID(ctx, user.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, apperror.Internal(err)
		}
		listing, err := u.listingRepo.GetByID(ctx, app.ListingID)
		if err != nil {
			return false, notFoundOr(err, "Listing not found")
		}
		return listing.RecruiterID == rec.ID, nil
	}
	return false, nil
}

// Withdraw deletes an application. Only the applicant may do so.
func (u *applicationUsecase) Withdraw(ctx context.Context, email string, id int64) error {
	user, err := u.resolve(ctx, email)
	if err != nil {
		return err
	}
	app, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	if user.Role != domain.RoleJobSeeker {
		return apperror.Forbidden("Cannot withdraw another user's application.")
	}

	seeker, err := u.seekerRepo.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}
	if seeker == nil || seeker.ID != app.JobSeekerID {
		return apperror.Forbidden("Cannot withdraw another user's application.")
	}

	if err := u.appRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Application not found")
	}
	return nil
}
