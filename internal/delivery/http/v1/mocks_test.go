package v1_test

import (
	"context"

	"jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct{ mock.Mock }

func (m *MockAuthUsecase) Register(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, email, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, email, password string) (*domain.AccessToken, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessToken), args.Error(1)
}

func (m *MockAuthUsecase) GetCurrentUser(ctx context.Context, email string) (*domain.UserWithProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserWithProfile), args.Error(1)
}

func (m *MockAuthUsecase) DeleteAccount(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type MockCompanyUsecase struct{ mock.Mock }

func (m *MockCompanyUsecase) List(ctx context.Context, page domain.Pagination) ([]domain.Company, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyUsecase) Get(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyUsecase) Create(ctx context.Context, email string, company *domain.Company) error {
	return m.Called(ctx, email, company).Error(0)
}

func (m *MockCompanyUsecase) Update(ctx context.Context, email string, id int64, patch domain.CompanyPatch) (*domain.Company, error) {
	args := m.Called(ctx, email, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyUsecase) Delete(ctx context.Context, email string, id int64) error {
	return m.Called(ctx, email, id).Error(0)
}

type MockRecruiterUsecase struct{ mock.Mock }

func (m *MockRecruiterUsecase) List(ctx context.Context, page domain.Pagination) ([]domain.Recruiter, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Recruiter), args.Error(1)
}

func (m *MockRecruiterUsecase) Get(ctx context.Context, id int64) (*domain.Recruiter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recruiter), args.Error(1)
}

func (m *MockRecruiterUsecase) Create(ctx context.Context, email string, rec *domain.Recruiter) error {
	return m.Called(ctx, email, rec).Error(0)
}

func (m *MockRecruiterUsecase) Update(ctx context.Context, email string, id int64, patch domain.RecruiterPatch) (*domain.Recruiter, error) {
	args := m.Called(ctx, email, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recruiter), args.Error(1)
}

func (m *MockRecruiterUsecase) Delete(ctx context.Context, email string, id int64) error {
	return m.Called(ctx, email, id).Error(0)
}

type MockSeekerUsecase struct{ mock.Mock }

func (m *MockSeekerUsecase) List(ctx context.Context, page domain.Pagination) ([]domain.JobSeeker, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.JobSeeker), args.Error(1)
}

func (m *MockSeekerUsecase) Get(ctx context.Context, id int64) (*domain.JobSeeker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeeker), args.Error(1)
}

func (m *MockSeekerUsecase) Completion(ctx context.Context, id int64) (*domain.ProfileCompletion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileCompletion), args.Error(1)
}

func (m *MockSeekerUsecase) Create(ctx context.Context, email string, seeker *domain.JobSeeker) error {
	return m.Called(ctx, email, seeker).Error(0)
}

func (m *MockSeekerUsecase) Update(ctx context.Context, email string, id int64, patch domain.JobSeekerPatch) (*domain.JobSeeker, error) {
	args := m.Called(ctx, email, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeeker), args.Error(1)
}

func (m *MockSeekerUsecase) Delete(ctx context.Context, email string, id int64) error {
	return m.Called(ctx, email, id).Error(0)
}

type MockListingUsecase struct{ mock.Mock }

func (m *MockListingUsecase) List(ctx context.Context, page domain.Pagination) ([]domain.Listing, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockListingUsecase) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingUsecase) Search(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockListingUsecase) Create(ctx context.Context, email string, listing *domain.Listing) error {
	return m.Called(ctx, email, listing).Error(0)
}

func (m *MockListingUsecase) Update(ctx context.Context, email string, id int64, patch domain.ListingPatch) (*domain.Listing, error) {
	args := m.Called(ctx, email, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingUsecase) Delete(ctx context.Context, email string, id int64) error {
	return m.Called(ctx, email, id).Error(0)
}

type MockApplicationUsecase struct{ mock.Mock }

func (m *MockApplicationUsecase) List(ctx context.Context, email string, page domain.Pagination) ([]domain.Application, error) {
	args := m.Called(ctx, email, page)
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationUsecase) Get(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUsecase) Apply(ctx context.Context, email string, listingID, seekerID int64) (*domain.Application, error) {
	args := m.Called(ctx, email, listingID, seekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUsecase) Update(ctx context.Context, email string, id int64, patch domain.ApplicationPatch) (*domain.Application, error) {
	args := m.Called(ctx, email, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationUsecase) Withdraw(ctx context.Context, email string, id int64) error {
	return m.Called(ctx, email, id).Error(0)
}

type MockRecipeUsecase struct{ mock.Mock }

func (m *MockRecipeUsecase) List(ctx context.Context, page domain.Pagination) ([]domain.Recipe, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *MockRecipeUsecase) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeUsecase) Create(ctx context.Context, email string, recipe *domain.Recipe) error {
	return m.Called(ctx, email, recipe).Error(0)
}

func (m *MockRecipeUsecase) Update(ctx context.Context, email string, id int64, patch domain.RecipePatch) (*domain.Recipe, error) {
	args := m.Called(ctx, email, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeUsecase) Delete(ctx context.Context, email string, id int64) error {
	return m.Called(ctx, email, id).Error(0)
}

type fakeHealth struct{ status map[string]string }

func (f fakeHealth) Check(context.Context) map[string]string { return f.status }

type fakeUsers map[string]*domain.User

func (f fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := f[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}
