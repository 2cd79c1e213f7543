package config

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSecret        = errors.New("config: SECRET_KEY is required")
	ErrUnsupportedAlgorithm = errors.New("config: only HS256 tokens are supported")
)

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	if c.JWTAlgorithm != "HS256" {
		return fmt.Errorf("%w (got %q)", ErrUnsupportedAlgorithm, c.JWTAlgorithm)
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("config: ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}
	if c.RateLimitWindowSeconds <= 0 {
		return fmt.Errorf("config: RATE_LIMIT_WINDOW_SECONDS must be positive")
	}
	return nil
}
