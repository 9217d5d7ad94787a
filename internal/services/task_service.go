package services

import (
	"context"
	"errors"
	"strings"

	"saasboard/internal/common"
	"saasboard/internal/models"
	"saasboard/internal/repositories"

	"github.com/google/uuid"
)

// TaskService manages the tasks of a tenant's projects
type TaskService interface {
	Create(ctx context.Context, actor common.Identity, req CreateTaskRequest) (*models.Task, error)
	List(ctx context.Context, actor common.Identity, projectID string) ([]*models.Task, error)
	Update(ctx context.Context, actor common.Identity, id uuid.UUID, req UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, actor common.Identity, id uuid.UUID) error
}

// CreateTaskRequest represents the task creation request payload
type CreateTaskRequest struct {
	ProjectID   string  `json:"projectId" validate:"required,uuid"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description"`
	AssignedTo  *string `json:"assignedTo" validate:"omitempty,uuid"`
}

// UpdateTaskRequest is a partial update; omitted fields are unchanged
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	AssignedTo  *string `json:"assignedTo" validate:"omitempty,uuid"`
}

type taskService struct {
	store repositories.Store
}

func NewTaskService(store repositories.Store) TaskService {
	return &taskService{store: store}
}

func (s *taskService) Create(ctx context.Context, actor common.Identity, req CreateTaskRequest) (*models.Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	if strings.TrimSpace(req.ProjectID) == "" || req.Title == "" {
		return nil, common.NewBadRequest("projectId and title are required")
	}
	if err := common.ValidateStruct(&req); err != nil {
		return nil, err
	}

	projectID := uuid.MustParse(req.ProjectID)
	if _, err := s.store.Projects().GetByID(ctx, actor.TenantID, projectID); err != nil {
		return nil, repoError(err, "Project", "Failed to create task")
	}

	assignee, err := s.resolveAssignee(ctx, actor, req.AssignedTo)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          uuid.New(),
		TenantID:    actor.TenantID,
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatusTodo,
		AssignedTo:  assignee,
	}
	if err := s.store.Tasks().Create(ctx, task); err != nil {
		return nil, taskWriteError(err, "Failed to create task")
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, actor common.Identity, projectID string) ([]*models.Task, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, common.NewBadRequest("projectId query param required")
	}
	pid, err := common.ValidateUUID(projectID, "projectId")
	if err != nil {
		return nil, common.NewBadRequest(err.Error())
	}

	tasks, err := s.store.Tasks().ListByProject(ctx, actor.TenantID, pid)
	if err != nil {
		return nil, common.NewInternal("Failed to list tasks", err)
	}
	return tasks, nil
}

func (s *taskService) Update(ctx context.Context, actor common.Identity, id uuid.UUID, req UpdateTaskRequest) (*models.Task, error) {
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		req.Title = &trimmed
	}
	if err := common.ValidateStruct(&req); err != nil {
		return nil, err
	}

	assignee, err := s.resolveAssignee(ctx, actor, req.AssignedTo)
	if err != nil {
		return nil, err
	}

	task, err := s.store.Tasks().Update(ctx, actor.TenantID, id, models.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssignedTo:  assignee,
	})
	if err != nil {
		return nil, taskWriteError(err, "Failed to update task")
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, actor common.Identity, id uuid.UUID) error {
	if err := s.store.Tasks().Delete(ctx, actor.TenantID, id); err != nil {
		return repoError(err, "Task", "Failed to delete task")
	}
	return nil
}

// taskWriteError maps a referenced project or assignee removed after it was
// checked to the same NotFound the check would have returned.
func taskWriteError(err error, failure string) error {
	if constraint, ok := repositories.ForeignKeyViolation(err); ok {
		switch constraint {
		case repositories.TaskProjectFK:
			return common.NewNotFound("Project")
		case repositories.TaskAssigneeFK:
			return common.NewNotFound("Assignee")
		}
	}
	return repoError(err, "Task", failure)
}

// resolveAssignee checks that an optional assignee belongs to the actor's tenant.
func (s *taskService) resolveAssignee(ctx context.Context, actor common.Identity, raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, common.NewBadRequest("assignedTo must be a valid UUID")
	}

	if _, err := s.store.Users().GetByID(ctx, actor.TenantID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, common.NewNotFound("Assignee")
		}
		return nil, common.NewInternal("Failed to load assignee", err)
	}
	return &id, nil
}
