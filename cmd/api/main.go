package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"jobboard-backend/config"
	"jobboard-backend/docs"
	"jobboard-backend/internal/delivery/http/middleware"
	v1 "jobboard-backend/internal/delivery/http/v1"
	"jobboard-backend/internal/repository/postgres"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/database"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/metrics"
	"jobboard-backend/pkg/redis"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Job Board API
// @version         1.0
// @description     Companies, recruiters, job seekers, listings and applications behind a role gate.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Init(logger.Options{})
		logger.Get().Fatal().Err(err).Msg("Failed to load config")
	}

	// 2. Setup Logger
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	log.Info().Str("port", cfg.Port).Str("base_path", cfg.BasePath).Msg("Starting job board backend")
	if !cfg.LogPretty {
		gin.SetMode(gin.ReleaseMode)
	}

	docs.SwaggerInfo.BasePath = cfg.BasePath

	ctx := context.Background()

	// 3. Setup Database
	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DBUrl); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
		log.Info().Msg("Migrations applied")
	}

	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.PoolConfig{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional)
	var cacheCheck func(ctx context.Context) error
	if err := redis.Initialize(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		if errors.Is(err, redis.ErrNotConfigured) {
			log.Info().Msg("Redis not configured, rate limiting is per-instance")
		} else {
			log.Warn().Err(err).Msg("Redis unavailable, rate limiting is per-instance")
		}
	} else {
		cacheCheck = redis.HealthCheck
	}
	defer redis.Close()

	// 5. Setup Metrics
	registry := metrics.NewRegistry()
	collector := metrics.NewCollector(registry)

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	recruiterRepo := postgres.NewRecruiterRepository(dbPool)
	seekerRepo := postgres.NewJobSeekerRepository(dbPool)
	listingRepo := postgres.NewListingRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	recipeRepo := postgres.NewRecipeRepository(dbPool)

	// 7. Setup Tokens
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL)

	// 8. Setup UseCases
	validate := validation.New()
	authUC := usecase.NewAuthUsecase(userRepo, seekerRepo, recruiterRepo, tokens, collector)
	companyUC := usecase.NewCompanyUsecase(userRepo, companyRepo, validate)
	recruiterUC := usecase.NewRecruiterUsecase(userRepo, recruiterRepo, companyRepo, validate)
	seekerUC := usecase.NewJobSeekerUsecase(userRepo, seekerRepo, validate)
	listingUC := usecase.NewListingUsecase(userRepo, listingRepo, recruiterRepo, companyRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(userRepo, applicationRepo, listingRepo, seekerRepo, recruiterRepo, collector)
	recipeUC := usecase.NewRecipeUsecase(userRepo, recipeRepo, validate)
	healthUC := usecase.NewHealthUsecase(dbPool, cacheCheck)

	// 9. Setup Gate
	gate := middleware.NewGate(middleware.GateConfig{
		BasePath:   cfg.BasePath,
		Verifier:   tokens,
		Principals: userRepo,
		Recorder:   collector,
	})

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		RecruiterUC:   recruiterUC,
		SeekerUC:      seekerUC,
		ListingUC:     listingUC,
		ApplicationUC: applicationUC,
		RecipeUC:      recipeUC,
		HealthUC:      healthUC,
		Gate:          gate,
		Tokens:        tokens,
		Config:        cfg,
		Metrics:       collector,
		Gatherer:      registry,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Listen failed")
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
