package handlers

import (
	"net/http"

	"saasboard/internal/common"
	"saasboard/internal/services"

	"github.com/labstack/echo/v4"
)

// TenantHandlers handles tenant onboarding
type TenantHandlers struct {
	tenantService services.TenantService
}

func NewTenantHandlers(tenantService services.TenantService) *TenantHandlers {
	return &TenantHandlers{tenantService: tenantService}
}

// RegisterTenant godoc
// @Summary      Register a tenant with its first admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      services.RegisterTenantRequest  true  "Tenant and admin"
// @Success      201   {object}  common.APIResponse{data=models.TenantRegistration}
// @Failure      400,409  {object}  common.ErrorResponse
// @Router       /auth/register-tenant [post]
func (h *TenantHandlers) RegisterTenant(c echo.Context) error {
	var req services.RegisterTenantRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	result, err := h.tenantService.RegisterTenant(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, common.SuccessMessage("Tenant registered successfully", result))
}
