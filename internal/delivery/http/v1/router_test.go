package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobboard-backend/config"
	"jobboard-backend/internal/delivery/http/middleware"
	v1 "jobboard-backend/internal/delivery/http/v1"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	seekerEmail    = "seeker@example.com"
	recruiterEmail = "recruiter@example.com"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router    *gin.Engine
	tokens    *auth.TokenService
	auth      *MockAuthUsecase
	companies *MockCompanyUsecase
	seekers   *MockSeekerUsecase
	listings  *MockListingUsecase
	apps      *MockApplicationUsecase
	health    *fakeHealth
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		tokens:    auth.NewTokenService("handler-test-secret", time.Minute),
		auth:      new(MockAuthUsecase),
		companies: new(MockCompanyUsecase),
		seekers:   new(MockSeekerUsecase),
		listings:  new(MockListingUsecase),
		apps:      new(MockApplicationUsecase),
		health:    &fakeHealth{status: map[string]string{"status": "ok", "database": "up", "cache": "disabled"}},
	}

	users := fakeUsers{
		seekerEmail:    {ID: 1, Email: seekerEmail, Role: domain.RoleJobSeeker},
		recruiterEmail: {ID: 2, Email: recruiterEmail, Role: domain.RoleRecruiter},
	}
	registry := metrics.NewRegistry()
	collector := metrics.NewCollector(registry)

	cfg := &config.Config{
		BasePath:                 "/v1",
		CORSAllowedOrigins:       []string{"http://localhost:8501"},
		RateLimitWindowSeconds:   60,
		RateLimitLoginThreshold:  100,
		RateLimitGlobalThreshold: 1000,
	}

	env.router = v1.NewRouter(v1.RouterDeps{
		AuthUC:        env.auth,
		CompanyUC:     env.companies,
		RecruiterUC:   new(MockRecruiterUsecase),
		SeekerUC:      env.seekers,
		ListingUC:     env.listings,
		ApplicationUC: env.apps,
		RecipeUC:      new(MockRecipeUsecase),
		HealthUC:      env.health,
		Gate: middleware.NewGate(middleware.GateConfig{
			BasePath:   cfg.BasePath,
			Verifier:   env.tokens,
			Principals: users,
			Recorder:   collector,
		}),
		Tokens:   env.tokens,
		Config:   cfg,
		Metrics:  collector,
		Gatherer: registry,
		Redis:    func() *goredis.Client { return nil },
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path, email string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		token, _, err := e.tokens.Issue(email)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	env.auth.On("Register", mock.Anything, "new@example.com", "secret1", domain.RoleRecruiter).
		Return(&domain.User{ID: 7, Email: "new@example.com", Role: domain.RoleRecruiter}, nil)

	w := env.do(t, http.MethodPost, "/v1/users/register", "", map[string]string{
		"email": "new@example.com", "password": "secret1", "role": "Recruiter",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Recruiter", data["role"])
	assert.NotContains(t, w.Body.String(), "password")
	env.auth.AssertExpectations(t)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/users/register", "", map[string]string{
		"email": "new@example.com", "password": "secret1", "role": "Admin",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
	env.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginReturnsTopLevelToken(t *testing.T) {
	env := newTestEnv(t)
	env.auth.On("Login", mock.Anything, seekerEmail, "secret1").Return(&domain.AccessToken{
		Message:     "Login successful!",
		AccessToken: "abc.def.ghi",
		TokenType:   "bearer",
	}, nil)

	w := env.do(t, http.MethodPost, "/v1/users/login", "", map[string]string{
		"username": seekerEmail, "password": "secret1",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "abc.def.ghi", body["access_token"])
	assert.Equal(t, "bearer", body["token_type"])
}

func TestLoginFailure(t *testing.T) {
	env := newTestEnv(t)
	env.auth.On("Login", mock.Anything, seekerEmail, "wrong").
		Return(nil, apperror.Unauthorized("Incorrect username or password"))

	w := env.do(t, http.MethodPost, "/v1/users/login", "", map[string]string{
		"email": seekerEmail, "password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "Incorrect username or password", decode(t, w)["message"])
}

func TestMeRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	env.auth.On("GetCurrentUser", mock.Anything, seekerEmail).
		Return(&domain.UserWithProfile{User: domain.User{ID: 1, Email: seekerEmail, Role: domain.RoleJobSeeker}}, nil)
	w = env.do(t, http.MethodGet, "/v1/users/me", seekerEmail, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPublicListingReadNeedsNoToken(t *testing.T) {
	env := newTestEnv(t)
	env.listings.On("List", mock.Anything, domain.Pagination{Skip: 0, Limit: 5}).
		Return([]domain.Listing{{ID: 1, Title: "Go Engineer"}}, nil)

	w := env.do(t, http.MethodGet, "/v1/listings", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].([]interface{})
	assert.Len(t, data, 1)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestPaginationBounds(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/listings?limit=51", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.listings.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestListingWritesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/listings", "", map[string]interface{}{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "Not authenticated", decode(t, w)["message"])
}

func TestCreateListing(t *testing.T) {
	env := newTestEnv(t)
	env.listings.On("Create", mock.Anything, recruiterEmail, mock.MatchedBy(func(l *domain.Listing) bool {
		return l.CompanyID == 4 && l.Employment == domain.EmploymentFullTime &&
			l.ApplicationDeadline.Format(domain.DateLayout) == "2030-01-31"
	})).Run(func(args mock.Arguments) {
		args.Get(2).(*domain.Listing).ID = 11
	}).Return(nil)

	w := env.do(t, http.MethodPost, "/v1/listings", recruiterEmail, map[string]interface{}{
		"company_id":           4,
		"title":                "Go Engineer",
		"description":          "Build APIs",
		"location":             "Remote",
		"salary_range":         "9L-15L",
		"employment":           "Full-Time",
		"application_deadline": "2030-01-31",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(11), data["listing_id"])
	env.listings.AssertExpectations(t)
}

func TestCreateListingRejectsUnknownEnum(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/listings", recruiterEmail, map[string]interface{}{
		"company_id":   4,
		"title":        "Go Engineer",
		"description":  "Build APIs",
		"location":     "Moon",
		"salary_range": "9L-15L",
		"employment":   "Full-Time",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.listings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchListings(t *testing.T) {
	env := newTestEnv(t)
	env.listings.On("Search", mock.Anything, domain.ListingFilter{Title: "go", EmploymentType: "Intern"}).
		Return([]domain.Listing{}, nil)

	w := env.do(t, http.MethodGet, "/v1/listings/search?title=go&employment_type=Intern", seekerEmail, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	env.listings.AssertExpectations(t)
}

func TestApplicationsAreSeekerOnly(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/applications", recruiterEmail, map[string]interface{}{"listing_id": 3})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Recruiter role is not authorized for this resource.", decode(t, w)["message"])
	env.apps.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApply(t *testing.T) {
	env := newTestEnv(t)
	env.apps.On("Apply", mock.Anything, seekerEmail, int64(3), int64(0)).
		Return(&domain.Application{ID: 9, ListingID: 3, JobSeekerID: 5, Status: domain.ApplicationStatusPending}, nil)

	w := env.do(t, http.MethodPost, "/v1/applications", seekerEmail, map[string]interface{}{"listing_id": 3})

	require.Equal(t, http.StatusCreated, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Pending", data["status"])
}

func TestApplyDuplicate(t *testing.T) {
	env := newTestEnv(t)
	env.apps.On("Apply", mock.Anything, seekerEmail, int64(3), int64(0)).
		Return(nil, apperror.Conflict("Job Seeker with ID 5 has already applied to Listing ID 3."))

	w := env.do(t, http.MethodPost, "/v1/applications", seekerEmail, map[string]interface{}{"listing_id": 3})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Job Seeker with ID 5 has already applied to Listing ID 3.", decode(t, w)["message"])
}

func TestUpdateApplicationStatus(t *testing.T) {
	env := newTestEnv(t)
	reviewed := domain.ApplicationStatusReviewed
	env.apps.On("Update", mock.Anything, seekerEmail, int64(9), domain.ApplicationPatch{Status: &reviewed}).
		Return(&domain.Application{ID: 9, Status: reviewed}, nil)

	w := env.do(t, http.MethodPatch, "/v1/applications/9", seekerEmail, map[string]interface{}{"status": "Reviewed"})

	assert.Equal(t, http.StatusOK, w.Code)
	env.apps.AssertExpectations(t)
}

func TestWithdrawApplication(t *testing.T) {
	env := newTestEnv(t)
	env.apps.On("Withdraw", mock.Anything, seekerEmail, int64(9)).Return(nil)

	w := env.do(t, http.MethodDelete, "/v1/applications/9", seekerEmail, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Application withdrawn", decode(t, w)["message"])
}

func TestSeekerCompletion(t *testing.T) {
	env := newTestEnv(t)
	env.seekers.On("Completion", mock.Anything, int64(3)).
		Return(&domain.ProfileCompletion{OverallPercentage: 80, BioPercentage: 100, ExperiencePercentage: 100}, nil)

	w := env.do(t, http.MethodGet, "/v1/seekers/3/completion", seekerEmail, nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(80), data["overall_percentage"])
	assert.Equal(t, float64(0), data["skills_percentage"])
}

func TestSeekerCompletionRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/seekers/3/completion", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvalidPathID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPatch, "/v1/seekers/abc", seekerEmail, map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id", decode(t, w)["message"])
}

func TestCompanyNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.companies.On("Get", mock.Anything, int64(42)).Return(nil, apperror.NotFound("Company not found"))

	w := env.do(t, http.MethodGet, "/v1/companies/42", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Company not found", decode(t, w)["message"])
}

func TestCompanyCreateRejectsUnknownIndustry(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/companies", recruiterEmail, map[string]interface{}{
		"email": "hr@acme.test", "name": "Acme", "industry": "Alchemy",
		"location": "Pune", "description": "Widgets", "website": "https://acme.test",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.companies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	env := newTestEnv(t)
	env.companies.On("Delete", mock.Anything, recruiterEmail, int64(5)).
		Return(apperror.Internal(assert.AnError))

	w := env.do(t, http.MethodDelete, "/v1/companies/5", recruiterEmail, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	env.health.status = map[string]string{"status": "degraded", "database": "down", "cache": "disabled"}
	w = env.do(t, http.MethodGet, "/v1/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/v1/health", "", nil)

	w := env.do(t, http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))
	assert.True(t, strings.Contains(w.Body.String(), "authz_gate_decisions_total"))
}
