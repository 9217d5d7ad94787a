package handlers

import (
	"saasboard/internal/common"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actor returns the authenticated caller set by the JWT middleware.
func actor(c echo.Context) (common.Identity, error) {
	id, ok := common.IdentityFromContext(c.Request().Context())
	if !ok {
		return common.Identity{}, common.NewForbidden("Tenant context missing")
	}
	return id, nil
}

// pathID parses the :id route parameter. A malformed id cannot name a row in
// any tenant, so it is reported as not found.
func pathID(c echo.Context, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, common.NewNotFound(resource)
	}
	return id, nil
}
