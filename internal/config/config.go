package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/random"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	Env             string
	FrontendURL     string
	ShutdownTimeout time.Duration

	// TrustProxy takes the client IP from X-Forwarded-For, trusting only
	// private and loopback hops. Off, the socket peer address is used.
	TrustProxy bool
}

// DatabaseConfig holds PostgreSQL settings
type DatabaseConfig struct {
	URL         string
	MaxConns    int
	MinConns    int
	AutoMigrate bool
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration

	// Generated is true when no JWT_SECRET was supplied and a random one was used.
	Generated bool
}

// RedisConfig holds the login throttle backend. An empty Addr disables it.
type RedisConfig struct {
	Addr             string
	Password         string
	DB               int
	LoginMaxAttempts int
	LoginWindow      time.Duration
}

// RateLimitConfig bounds per-IP request rates on the public auth routes
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

var ErrMissingDatabaseURL = errors.New("DATABASE_URL environment variable is required")
var ErrMissingJWTSecret = errors.New("JWT_SECRET environment variable is required in production")

// Load reads configuration from the environment, after loading an optional .env file
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			Env:             getEnv("APP_ENV", "development"),
			FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			TrustProxy:      getEnvAsBool("TRUST_PROXY", false),
		},
		Database: DatabaseConfig{
			URL:         getEnv("DATABASE_URL", ""),
			MaxConns:    getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:    getEnvAsInt("DB_MIN_CONNS", 0),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			Issuer: getEnv("JWT_ISSUER", "saasboard"),
			TTL:    24 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:             strings.TrimPrefix(getEnv("REDIS_ADDR", ""), "redis://"),
			Password:         getEnv("REDIS_PASSWORD", ""),
			DB:               getEnvAsInt("REDIS_DB", 0),
			LoginMaxAttempts: getEnvAsInt("LOGIN_MAX_ATTEMPTS", 5),
			LoginWindow:      getEnvAsDuration("LOGIN_ATTEMPT_WINDOW", 15*time.Minute),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvAsFloat("RATE_LIMIT_RPS", 5),
			Burst: getEnvAsInt("RATE_LIMIT_BURST", 10),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if cfg.Database.URL == "" {
		return nil, ErrMissingDatabaseURL
	}

	if cfg.JWT.Secret == "" {
		if cfg.IsProduction() {
			return nil, ErrMissingJWTSecret
		}
		cfg.JWT.Secret = random.String(32)
		cfg.JWT.Generated = true
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
