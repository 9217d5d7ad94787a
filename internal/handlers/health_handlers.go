package handlers

import (
	"context"
	"net/http"
	"time"

	"saasboard/internal/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// Pinger is implemented by *pgxpool.Pool and caching.CacheService.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlers handles health check and monitoring endpoints
type HealthHandlers struct {
	db    Pinger
	redis Pinger
}

// NewHealthHandlers creates a new health handlers instance. redis may be nil
// when the login throttle is disabled.
func NewHealthHandlers(db Pinger, redis Pinger) *HealthHandlers {
	return &HealthHandlers{db: db, redis: redis}
}

// HealthStatus is the body of the health endpoint
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis,omitempty"`
}

// HealthCheck godoc
// @Summary      Liveness and dependency status
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthStatus
// @Failure      503  {object}  HealthStatus
// @Router       /health [get]
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	status := HealthStatus{Status: "ok", Database: "connected"}
	code := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn("database health check failed", zap.Error(err))
		status.Status = "unavailable"
		status.Database = "disconnected"
		code = http.StatusServiceUnavailable
	}

	// redis only backs the login throttle, which fails open
	if h.redis != nil {
		status.Redis = "connected"
		if err := h.redis.Ping(ctx); err != nil {
			logger.FromContext(ctx).Warn("redis health check failed", zap.Error(err))
			status.Redis = "disconnected"
		}
	}

	return c.JSON(code, status)
}
