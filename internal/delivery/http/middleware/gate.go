package middleware

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// TokenVerifier validates a bearer token and returns its subject (the user's email).
type TokenVerifier interface {
	Subject(token string) (string, error)
}

// PrincipalFinder looks a user up by email.
type PrincipalFinder interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// DecisionRecorder counts gate outcomes.
type DecisionRecorder interface {
	RecordGateDecision(outcome string)
}

// RoutePolicy restricts every path matching Pattern to the listed roles.
type RoutePolicy struct {
	Pattern *regexp.Regexp
	Roles   domain.RoleSet
}

// DefaultPolicies is the route table, in evaluation order. The first match wins.
func DefaultPolicies() []RoutePolicy {
	both := domain.RoleSet{domain.RoleRecruiter, domain.RoleJobSeeker}
	return []RoutePolicy{
		{Pattern: regexp.MustCompile(`/recruiters(/.*)?$`), Roles: domain.RoleSet{domain.RoleRecruiter}},
		{Pattern: regexp.MustCompile(`/applications(/.*)?$`), Roles: domain.RoleSet{domain.RoleJobSeeker}},
		{Pattern: regexp.MustCompile(`/seekers(/.*)?$`), Roles: domain.RoleSet{domain.RoleJobSeeker}},
		{Pattern: regexp.MustCompile(`/listings(/.*)?$`), Roles: both},
		{Pattern: regexp.MustCompile(`/companies(/.*)?$`), Roles: both},
		{Pattern: regexp.MustCompile(`/recipes(/.*)?$`), Roles: both},
	}
}

// DefaultPublicReads lists the GET paths, relative to the API base path, that
// never require a token.
func DefaultPublicReads() []*regexp.Regexp {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`^/$`),
		regexp.MustCompile(`^/health/?$`),
		regexp.MustCompile(`^/users/login/?$`),
		regexp.MustCompile(`^/users/register/?$`),
	}
	for _, collection := range []string{"companies", "listings", "seekers", "recruiters", "recipes"} {
		patterns = append(patterns,
			regexp.MustCompile(`^/`+collection+`/?$`),
			regexp.MustCompile(`^/`+collection+`/\d+/?$`),
		)
	}
	return patterns
}

type GateConfig struct {
	// BasePath is stripped before public reads are matched, e.g. "/v1".
	BasePath    string
	Policies    []RoutePolicy
	PublicReads []*regexp.Regexp
	Verifier    TokenVerifier
	Principals  PrincipalFinder
	Recorder    DecisionRecorder
}

// Gate is the role-authorization check that runs before every handler.
type Gate struct {
	basePath    string
	policies    []RoutePolicy
	publicReads []*regexp.Regexp
	verifier    TokenVerifier
	principals  PrincipalFinder
	recorder    DecisionRecorder
}

func NewGate(cfg GateConfig) *Gate {
	g := &Gate{
		basePath:    strings.TrimRight(cfg.BasePath, "/"),
		policies:    cfg.Policies,
		publicReads: cfg.PublicReads,
		verifier:    cfg.Verifier,
		principals:  cfg.Principals,
		recorder:    cfg.Recorder,
	}
	if g.policies == nil {
		g.policies = DefaultPolicies()
	}
	if g.publicReads == nil {
		g.publicReads = DefaultPublicReads()
	}
	return g
}

func (g *Gate) relative(path string) string {
	if g.basePath == "" || !strings.HasPrefix(path, g.basePath) {
		return path
	}
	rel := strings.TrimPrefix(path, g.basePath)
	if rel == "" {
		return "/"
	}
	if rel[0] != '/' {
		// "/v10/..." is not under "/v1"
		return path
	}
	return rel
}

func (g *Gate) isPublicRead(method, rel string) bool {
	if method != http.MethodGet {
		return false
	}
	for _, p := range g.publicReads {
		if p.MatchString(rel) {
			return true
		}
	}
	return false
}

func (g *Gate) match(rel string) *RoutePolicy {
	for i := range g.policies {
		if g.policies[i].Pattern.MatchString(rel) {
			return &g.policies[i]
		}
	}
	return nil
}

func (g *Gate) record(outcome string) {
	if g.recorder != nil {
		g.recorder.RecordGateDecision(outcome)
	}
}

// Authorize decides whether a request may proceed. On success it returns the
// authenticated email, which is empty when the route needed no identity.
func (g *Gate) Authorize(ctx context.Context, method, path, authHeader string) (string, *apperror.AppError) {
	rel := g.relative(path)

	if g.isPublicRead(method, rel) {
		g.record(metrics.OutcomePublic)
		return "", nil
	}

	policy := g.match(rel)
	if policy == nil {
		g.record(metrics.OutcomeUnrestricted)
		return "", nil
	}

	token, ok := auth.BearerToken(authHeader)
	if !ok {
		g.record(metrics.OutcomeUnauthenticated)
		return "", apperror.Unauthorized("Not authenticated")
	}

	email, err := g.verifier.Subject(token)
	if err != nil {
		g.record(metrics.OutcomeUnauthenticated)
		if errors.Is(err, auth.ErrTokenExpired) {
			return "", apperror.New(http.StatusUnauthorized, "Token has expired", err)
		}
		return "", apperror.New(http.StatusUnauthorized, "Could not validate credentials", err)
	}

	user, err := g.principals.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			g.record(metrics.OutcomeNotFound)
			return "", apperror.NotFound("User not found.")
		}
		g.record(metrics.OutcomeError)
		return "", apperror.Internal(err)
	}

	if !policy.Roles.Contains(user.Role) {
		g.record(metrics.OutcomeForbidden)
		return "", apperror.Forbidden(user.Role.String() + " role is not authorized for this resource.")
	}

	g.record(metrics.OutcomeAllowed)
	return email, nil
}

// Middleware enforces the gate and stores the authenticated email on the gin context.
func (g *Gate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, appErr := g.Authorize(c.Request.Context(), c.Request.Method, c.Request.URL.Path, c.GetHeader("Authorization"))
		if appErr != nil {
			if appErr.Code == http.StatusInternalServerError {
				logger.Get().Error().Err(appErr.Err).
					Str("path", c.Request.URL.Path).
					Msg("authorization gate failed to resolve principal")
			}
			abortWithAppError(c, appErr)
			return
		}
		if email != "" {
			c.Set(string(domain.KeyUserEmail), email)
		}
		c.Next()
	}
}

func abortWithAppError(c *gin.Context, appErr *apperror.AppError) {
	if appErr.Code == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	message := appErr.Message
	if appErr.Code == http.StatusInternalServerError {
		message = "An unexpected error occurred. Please try again later."
	}
	response.Error(c, appErr.Code, message, nil)
	c.Abort()
}

// UserEmail returns the email the gate or RequireAuth placed on the context.
func UserEmail(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserEmail))
}
