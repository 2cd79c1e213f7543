package usecase

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type listingUsecase struct {
	principals
	listingRepo   domain.ListingRepository
	recruiterRepo domain.RecruiterRepository
	companyRepo   domain.CompanyRepository
	validate      *validator.Validate
}

func NewListingUsecase(
	userRepo domain.UserRepository,
	listingRepo domain.ListingRepository,
	recruiterRepo domain.RecruiterRepository,
	companyRepo domain.CompanyRepository,
	validate *validator.Validate,
) domain.ListingUsecase {
	return &listingUsecase{
		principals:    principals{users: userRepo},
		listingRepo:   listingRepo,
		recruiterRepo: recruiterRepo,
		companyRepo:   companyRepo,
		validate:      validate,
	}
}

func (u *listingUsecase) List(ctx context.Context, page domain.Pagination) ([]domain.Listing, error) {
	page = page.Normalize()
	listings, err := u.listingRepo.Fetch(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return listings, nil
}

func (u *listingUsecase) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	listing, err := u.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Listing not found")
	}
	return listing, nil
}

func (u *listingUsecase) Search(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	listings, err := u.listingRepo.Search(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return listings, nil
}

// callerRecruiter returns the recruiter profile of the authenticated user.
func (u *listingUsecase) callerRecruiter(ctx context.Context, email string) (*domain.Recruiter, error) {
	user, err := u.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	rec, err := u.recruiterRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, notFoundOr(err, "Recruiter profile not found. Create one before posting listings.")
	}
	return rec, nil
}

func (u *listingUsecase) Create(ctx context.Context, email string, listing *domain.Listing) error {
	rec, err := u.callerRecruiter(ctx, email)
	if err != nil {
		return err
	}
	if _, err := u.companyRepo.GetByID(ctx, listing.CompanyID); err != nil {
		return notFoundOr(err, "Company not found")
	}

	listing.RecruiterID = rec.ID
	if listing.IsActive == "" {
		listing.IsActive = domain.ListingStillAccepting
	}
	if listing.PostedDate.IsZero() {
		listing.PostedDate = domain.NewDate(time.Now())
	}
	if err := validateStruct(u.validate, listing); err != nil {
		return err
	}
	if listing.ApplicationDeadline.IsZero() {
		return apperror.BadRequest("Application deadline is required")
	}
	if listing.ApplicationDeadline.Before(listing.PostedDate.Time) {
		return apperror.BadRequest("Application deadline cannot be before the posted date")
	}

	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt
	if err := u.listingRepo.Create(ctx, listing); err != nil {
		return notFoundOr(err, "Company not found")
	}
	return nil
}

func (u *listingUsecase) owned(ctx context.Context, email string, id int64) (*domain.Listing, error) {
	rec, err := u.callerRecruiter(ctx, email)
	if err != nil {
		return nil, err
	}
	listing, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.RecruiterID != rec.ID {
		return nil, apperror.Forbidden("Only the recruiter who posted this listing can modify it.")
	}
	return listing, nil
}

func (u *listingUsecase) Update(ctx context.Context, email string, id int64, patch domain.ListingPatch) (*domain.Listing, error) {
	listing, err := u.owned(ctx, email, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(listing)
	if err := validateStruct(u.validate, listing); err != nil {
		return nil, err
	}
	listing.UpdatedAt = time.Now()

	if err := u.listingRepo.Update(ctx, listing); err != nil {
		return nil, notFoundOr(err, "Listing not found")
	}
	return listing, nil
}

func (u *listingUsecase) Delete(ctx context.Context, email string, id int64) error {
	if _, err := u.owned(ctx, email, id); err != nil {
		return err
	}
	if err := u.listingRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Listing not found")
	}
	return nil
}
