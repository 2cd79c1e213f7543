package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "dev-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/v1", cfg.BasePath)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{cfg.FrontendURL}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "dev-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "30")
	t.Setenv("API_BASE_PATH", "api/")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("RUN_MIGRATIONS", "not-a-bool")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, "/api", cfg.BasePath)
	assert.True(t, cfg.LogPretty)
	assert.True(t, cfg.RunMigrations, "invalid bool falls back to default")
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigRejects(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "")
		t.Setenv("JWT_SECRET", "")
		_, err := LoadConfig()
		assert.ErrorIs(t, err, ErrMissingSecret)
	})

	t.Run("asymmetric algorithm", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "dev-secret")
		t.Setenv("ALGORITHM", "rs256")
		_, err := LoadConfig()
		assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
	})

	t.Run("zero ttl", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "dev-secret")
		t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "0")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
