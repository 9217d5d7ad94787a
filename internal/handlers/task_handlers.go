package handlers

import (
	"net/http"

	"saasboard/internal/common"
	"saasboard/internal/services"

	"github.com/labstack/echo/v4"
)

// TaskHandlers handles task CRUD within the caller's tenant
type TaskHandlers struct {
	taskService services.TaskService
}

func NewTaskHandlers(taskService services.TaskService) *TaskHandlers {
	return &TaskHandlers{taskService: taskService}
}

// ListTasksQuery selects the project whose tasks are listed
type ListTasksQuery struct {
	ProjectID string `query:"projectId"`
}

// CreateTask godoc
// @Summary      Create a task in a project
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      services.CreateTaskRequest  true  "Task"
// @Success      201   {object}  common.APIResponse{data=models.Task}
// @Failure      400,404  {object}  common.ErrorResponse
// @Router       /tasks [post]
func (h *TaskHandlers) CreateTask(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}

	var req services.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	task, err := h.taskService.Create(c.Request().Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, common.SuccessMessage("Task created successfully", task))
}

// ListTasks godoc
// @Summary      List the tasks of a project
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  query     string  true  "Project ID"
// @Success      200        {object}  common.APIResponse{data=[]models.Task}
// @Failure      400        {object}  common.ErrorResponse
// @Router       /tasks [get]
func (h *TaskHandlers) ListTasks(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}

	var q ListTasksQuery
	if err := c.Bind(&q); err != nil {
		return err
	}

	tasks, err := h.taskService.List(c.Request().Context(), id, q.ProjectID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, common.Success(tasks))
}

// UpdateTask godoc
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Task ID"
// @Param        body  body      services.UpdateTaskRequest  true  "Fields to change"
// @Success      200   {object}  common.APIResponse{data=models.Task}
// @Failure      400,404  {object}  common.ErrorResponse
// @Router       /tasks/{id} [patch]
func (h *TaskHandlers) UpdateTask(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	taskID, err := pathID(c, "Task")
	if err != nil {
		return err
	}

	var req services.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	task, err := h.taskService.Update(c.Request().Context(), id, taskID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, common.SuccessMessage("Task updated successfully", task))
}

// DeleteTask godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /tasks/{id} [delete]
func (h *TaskHandlers) DeleteTask(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	taskID, err := pathID(c, "Task")
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(c.Request().Context(), id, taskID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, common.SuccessMessage("Task deleted successfully", nil))
}
