package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/saasboard")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/saasboard", cfg.Database.URL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Len(t, cfg.JWT.Secret, 32)
	assert.True(t, cfg.JWT.Generated)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.Server.TrustProxy)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/app")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "8080")
	t.Setenv("REDIS_ADDR", "redis://cache:6379")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "3")
	t.Setenv("LOGIN_ATTEMPT_WINDOW", "1m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.False(t, cfg.JWT.Generated)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.LoginMaxAttempts)
	assert.Equal(t, time.Minute, cfg.Redis.LoginWindow)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.True(t, cfg.Server.TrustProxy)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/app")
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingDatabaseURL)
	})

	t.Run("production requires jwt secret", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://db/app")
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingJWTSecret)
	})
}
