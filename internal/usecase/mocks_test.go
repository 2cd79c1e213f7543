package usecase_test

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSeekerRepo struct {
	mock.Mock
}

func (m *MockSeekerRepo) Create(ctx context.Context, s *domain.JobSeeker) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSeekerRepo) GetByID(ctx context.Context, id int64) (*domain.JobSeeker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeeker), args.Error(1)
}
func (m *MockSeekerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.JobSeeker, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeeker), args.Error(1)
}
func (m *MockSeekerRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.JobSeeker, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.JobSeeker), args.Error(1)
}
func (m *MockSeekerRepo) Update(ctx context.Context, s *domain.JobSeeker) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSeekerRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockRecruiterRepo struct {
	mock.Mock
}

func (m *MockRecruiterRepo) Create(ctx context.Context, r *domain.Recruiter) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockRecruiterRepo) GetByID(ctx context.Context, id int64) (*domain.Recruiter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recruiter), args.Error(1)
}
func (m *MockRecruiterRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Recruiter, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recruiter), args.Error(1)
}
func (m *MockRecruiterRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Recruiter, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Recruiter), args.Error(1)
}
func (m *MockRecruiterRepo) Update(ctx context.Context, r *domain.Recruiter) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockRecruiterRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, c *domain.Company) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCompanyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Company, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) Update(ctx context.Context, c *domain.Company) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCompanyRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockListingRepo struct {
	mock.Mock
}

func (m *MockListingRepo) Create(ctx context.Context, l *domain.Listing) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockListingRepo) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Listing, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Listing), args.Error(1)
}
func (m *MockListingRepo) Search(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Listing), args.Error(1)
}
func (m *MockListingRepo) Update(ctx context.Context, l *domain.Listing) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockListingRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) FetchBySeeker(ctx context.Context, seekerID int64, limit, offset int) ([]domain.Application, error) {
	args := m.Called(ctx, seekerID, limit, offset)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) FetchByRecruiter(ctx context.Context, recruiterID int64, limit, offset int) ([]domain.Application, error) {
	args := m.Called(ctx, recruiterID, limit, offset)
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) CheckExists(ctx context.Context, listingID, seekerID int64) (bool, error) {
	args := m.Called(ctx, listingID, seekerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockRecipeRepo struct {
	mock.Mock
}

func (m *MockRecipeRepo) Create(ctx context.Context, r *domain.Recipe) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockRecipeRepo) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}
func (m *MockRecipeRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Recipe, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}
func (m *MockRecipeRepo) Update(ctx context.Context, r *domain.Recipe) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockRecipeRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(subject string) (string, time.Time, error) {
	args := m.Called(subject)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type countingEvents struct {
	registrations []string
	loginFailures int
	applications  int
}

func (e *countingEvents) RecordRegistration(role string) {
	e.registrations = append(e.registrations, role)
}
func (e *countingEvents) RecordLoginFailure()         { e.loginFailures++ }
func (e *countingEvents) RecordApplicationSubmitted() { e.applications++ }
