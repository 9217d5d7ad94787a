package handlers

import (
	"net/http"

	"saasboard/internal/common"
	"saasboard/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles authentication-related HTTP requests
type AuthHandlers struct {
	authService services.AuthService
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(authService services.AuthService) *AuthHandlers {
	return &AuthHandlers{authService: authService}
}

// Login godoc
// @Summary      Log in to a tenant
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      services.LoginRequest  true  "Credentials"
// @Success      200   {object}  common.APIResponse{data=models.LoginResponse}
// @Failure      400,401,403,404,429  {object}  common.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandlers) Login(c echo.Context) error {
	var req services.LoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	resp, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, common.Success(resp))
}

// Me godoc
// @Summary      Current user and tenant
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=models.CurrentUser}
// @Failure      401,404  {object}  common.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandlers) Me(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}

	me, err := h.authService.CurrentUser(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, common.Success(me))
}
