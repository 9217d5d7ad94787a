package middleware

import (
	"saasboard/internal/common"
	"saasboard/internal/logger"
	"saasboard/internal/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TenantIsolation rejects authenticated requests whose identity carries no
// tenant. It must run after JWTMiddleware.
func TenantIsolation(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			if _, ok := common.IdentityFromContext(ctx); !ok {
				m.RecordTenantContextMissing()
				logger.FromContext(ctx).Warn("request without tenant context", zap.String("path", c.Path()))
				return common.NewForbidden("Tenant context missing")
			}
			return next(c)
		}
	}
}
