package middleware

import (
	"saasboard/internal/common"
	"saasboard/internal/models"

	"github.com/labstack/echo/v4"
)

// RequireRole lets the request through only when the caller has one of roles.
// message is returned with the 403 otherwise.
func RequireRole(message string, roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := common.GetRoleFromContext(c.Request().Context())
			if !ok {
				return common.NewUnauthorized("User not authenticated")
			}
			if _, ok := allowed[role]; !ok {
				return common.NewForbidden(message)
			}
			return next(c)
		}
	}
}

// RequireTenantAdmin restricts a route to tenant admins.
func RequireTenantAdmin(action string) echo.MiddlewareFunc {
	return RequireRole("Only tenant admins can "+action, models.RoleTenantAdmin)
}
