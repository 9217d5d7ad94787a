package middleware

import (
	"errors"
	"net/http"

	"saasboard/internal/common"
	"saasboard/internal/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuditTrail writes one structured log line per mutating request made by an
// authenticated caller. Request bodies are never logged.
func AuditTrail() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			method := c.Request().Method
			if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
				return err
			}

			ctx := c.Request().Context()
			id, ok := common.IdentityFromContext(ctx)
			if !ok {
				return err
			}

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = statusOf(err)
			}

			fields := []zap.Field{
				zap.String("tenant_id", id.TenantID.String()),
				zap.String("user_id", id.UserID.String()),
				zap.String("role", id.Role),
				zap.String("method", method),
				zap.String("route", c.Path()),
				zap.Int("status", status),
			}
			if resourceID := c.Param("id"); resourceID != "" {
				fields = append(fields, zap.String("resource_id", resourceID))
			}
			logger.FromContext(ctx).Info("audit", fields...)

			return err
		}
	}
}

func statusOf(err error) int {
	var statusErr interface{ Status() int }
	if errors.As(err, &statusErr) {
		return statusErr.Status()
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}
