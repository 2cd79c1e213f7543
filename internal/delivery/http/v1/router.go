package v1

import (
	"context"
	"net/http"
	"sync"
	"time"

	"jobboard-backend/config"
	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/metrics"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// HealthChecker reports dependency status, keyed by component.
type HealthChecker interface {
	Check(ctx context.Context) map[string]string
}

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	CompanyUC     domain.CompanyUsecase
	RecruiterUC   domain.RecruiterUsecase
	SeekerUC      domain.JobSeekerUsecase
	ListingUC     domain.ListingUsecase
	ApplicationUC domain.ApplicationUsecase
	RecipeUC      domain.RecipeUsecase
	HealthUC      HealthChecker
	Gate          *middleware.Gate
	Tokens        middleware.TokenVerifier
	Config        *config.Config
	Metrics       *metrics.Collector
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
	// Redis returns the shared client or nil; rate limiting falls back to memory.
	Redis func() *goredis.Client
}

var bindingOnce sync.Once

// RegisterBindingValidators adds the custom rules to gin's request binding.
func RegisterBindingValidators() {
	bindingOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			validation.RegisterValidators(v)
		}
	})
}

func NewRouter(deps RouterDeps) *gin.Engine {
	RegisterBindingValidators()
	cfg := deps.Config

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(middleware.SecurityHeadersMiddleware())

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	globalLimit := middleware.DefaultRateLimitConfig(cfg.RateLimitGlobalThreshold, window)
	globalLimit.Metrics = deps.Metrics
	globalLimit.Redis = deps.Redis
	r.Use(middleware.RateLimitMiddleware(globalLimit))

	r.Use(middleware.ErrorHandler())

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))
	}

	api := r.Group(cfg.BasePath)

	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Every route below passes the role gate
	api.Use(deps.Gate.Middleware())

	api.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Welcome to the job board API", gin.H{
			"docs": cfg.BasePath + "/swagger/index.html",
		})
	})

	api.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		if status["status"] != "ok" {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	loginLimit := middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window)
	loginLimit.Metrics = deps.Metrics
	loginLimit.Redis = deps.Redis

	NewUserHandler(api, deps.AuthUC, middleware.RequireAuth(deps.Tokens), middleware.RateLimitMiddleware(loginLimit))
	NewCompanyHandler(api, deps.CompanyUC)
	NewRecruiterHandler(api, deps.RecruiterUC)
	NewSeekerHandler(api, deps.SeekerUC)
	NewListingHandler(api, deps.ListingUC)
	NewApplicationHandler(api, deps.ApplicationUC)
	NewRecipeHandler(api, deps.RecipeUC)

	return r
}
