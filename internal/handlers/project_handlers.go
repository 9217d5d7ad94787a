package handlers

import (
	"net/http"

	"saasboard/internal/common"
	"saasboard/internal/services"

	"github.com/labstack/echo/v4"
)

// ProjectHandlers handles project CRUD within the caller's tenant
type ProjectHandlers struct {
	projectService services.ProjectService
}

func NewProjectHandlers(projectService services.ProjectService) *ProjectHandlers {
	return &ProjectHandlers{projectService: projectService}
}

// CreateProject godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      services.CreateProjectRequest  true  "Project"
// @Success      201   {object}  common.APIResponse{data=models.Project}
// @Failure      400,403  {object}  common.ErrorResponse
// @Router       /projects [post]
func (h *ProjectHandlers) CreateProject(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}

	var req services.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	project, err := h.projectService.Create(c.Request().Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, common.SuccessMessage("Project created successfully", project))
}

// ListProjects godoc
// @Summary      List the projects of the caller's tenant
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=[]models.Project}
// @Router       /projects [get]
func (h *ProjectHandlers) ListProjects(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}

	projects, err := h.projectService.List(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, common.Success(projects))
}

// UpdateProject godoc
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                         true  "Project ID"
// @Param        body  body      services.UpdateProjectRequest  true  "Fields to change"
// @Success      200   {object}  common.APIResponse{data=models.Project}
// @Failure      400,404  {object}  common.ErrorResponse
// @Router       /projects/{id} [patch]
func (h *ProjectHandlers) UpdateProject(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	projectID, err := pathID(c, "Project")
	if err != nil {
		return err
	}

	var req services.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	project, err := h.projectService.Update(c.Request().Context(), id, projectID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, common.SuccessMessage("Project updated successfully", project))
}

// DeleteProject godoc
// @Summary      Delete a project and its tasks
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /projects/{id} [delete]
func (h *ProjectHandlers) DeleteProject(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	projectID, err := pathID(c, "Project")
	if err != nil {
		return err
	}

	if err := h.projectService.Delete(c.Request().Context(), id, projectID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, common.SuccessMessage("Project deleted successfully", nil))
}
