package usecase

import (
	"context"
	"time"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db    Pinger
	cache func(ctx context.Context) error
}

// NewHealthUsecase reports database and cache reachability. cache may be nil
// when Redis is not configured.
func NewHealthUsecase(db Pinger, cache func(ctx context.Context) error) HealthUsecase {
	return &healthUsecase{db: db, cache: cache}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{
		"status":   "ok",
		"database": "up",
		"cache":    "disabled",
	}

	if u.db == nil || u.db.Ping(ctx) != nil {
		status["status"] = "degraded"
		status["database"] = "down"
	}
	if u.cache != nil {
		if err := u.cache(ctx); err != nil {
			status["cache"] = "down"
		} else {
			status["cache"] = "up"
		}
	}
	return status
}
