package handlers

import (
	"net/http"

	"saasboard/internal/common"
	"saasboard/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandlers handles user management within the caller's tenant
type UserHandlers struct {
	userService services.UserService
}

func NewUserHandlers(userService services.UserService) *UserHandlers {
	return &UserHandlers{userService: userService}
}

// CreateUser godoc
// @Summary      Create a user in the caller's tenant
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      services.CreateUserRequest  true  "User"
// @Success      201   {object}  common.APIResponse{data=models.User}
// @Failure      400,403,409  {object}  common.ErrorResponse
// @Router       /users [post]
func (h *UserHandlers) CreateUser(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}

	var req services.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	user, err := h.userService.Create(c.Request().Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, common.SuccessMessage("User created successfully", user))
}

// ListUsers godoc
// @Summary      List the users of the caller's tenant
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]models.User}
// @Router       /users [get]
func (h *UserHandlers) ListUsers(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}

	users, err := h.userService.List(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, common.Success(users))
}

// UpdateUser godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "User ID"
// @Param        body  body      services.UpdateUserRequest  true  "Fields to change"
// @Success      200   {object}  common.APIResponse{data=models.User}
// @Failure      400,403,404  {object}  common.ErrorResponse
// @Router       /users/{id} [patch]
func (h *UserHandlers) UpdateUser(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "User")
	if err != nil {
		return err
	}

	var req services.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	user, err := h.userService.Update(c.Request().Context(), id, userID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, common.SuccessMessage("User updated successfully", user))
}

// DeleteUser godoc
// @Summary      Deactivate a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  common.APIResponse
// @Failure      403,404  {object}  common.ErrorResponse
// @Router       /users/{id} [delete]
func (h *UserHandlers) DeleteUser(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "User")
	if err != nil {
		return err
	}

	if err := h.userService.Deactivate(c.Request().Context(), id, userID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, common.SuccessMessage("User deactivated successfully", nil))
}
