package services

import (
	"context"
	"strings"

	"saasboard/internal/common"
	"saasboard/internal/models"
	"saasboard/internal/repositories"

	"github.com/google/uuid"
)

// ProjectService manages the projects of a tenant
type ProjectService interface {
	Create(ctx context.Context, actor common.Identity, req CreateProjectRequest) (*models.Project, error)
	List(ctx context.Context, actor common.Identity) ([]*models.Project, error)
	Update(ctx context.Context, actor common.Identity, id uuid.UUID, req UpdateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, actor common.Identity, id uuid.UUID) error
}

// CreateProjectRequest represents the project creation request payload
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

// UpdateProjectRequest is a partial update; omitted fields are unchanged
type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=active archived completed"`
}

type projectService struct {
	store repositories.Store
	quota QuotaService
}

func NewProjectService(store repositories.Store, quota QuotaService) ProjectService {
	return &projectService{store: store, quota: quota}
}

func (s *projectService) Create(ctx context.Context, actor common.Identity, req CreateProjectRequest) (*models.Project, error) {
	if err := requireTenantAdmin(actor, "create projects"); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, common.NewBadRequest("Project name is required")
	}
	if err := common.ValidateStruct(&req); err != nil {
		return nil, err
	}

	project := &models.Project{
		ID:          uuid.New(),
		TenantID:    actor.TenantID,
		Name:        req.Name,
		Description: req.Description,
		Status:      models.ProjectStatusActive,
		CreatedBy:   actor.UserID,
	}

	err := s.store.WithTx(ctx, func(tx repositories.Store) error {
		if err := s.quota.EnsureProjectCapacity(ctx, tx, actor.TenantID); err != nil {
			return err
		}
		return tx.Projects().Create(ctx, project)
	})
	if err != nil {
		return nil, repoError(err, "Project", "Failed to create project")
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context, actor common.Identity) ([]*models.Project, error) {
	projects, err := s.store.Projects().List(ctx, actor.TenantID)
	if err != nil {
		return nil, common.NewInternal("Failed to list projects", err)
	}
	return projects, nil
}

func (s *projectService) Update(ctx context.Context, actor common.Identity, id uuid.UUID, req UpdateProjectRequest) (*models.Project, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := common.ValidateStruct(&req); err != nil {
		return nil, err
	}

	project, err := s.store.Projects().Update(ctx, actor.TenantID, id, models.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return nil, repoError(err, "Project", "Failed to update project")
	}
	return project, nil
}

// Delete removes the project and, by cascade, its tasks.
func (s *projectService) Delete(ctx context.Context, actor common.Identity, id uuid.UUID) error {
	if err := s.store.Projects().Delete(ctx, actor.TenantID, id); err != nil {
		return repoError(err, "Project", "Failed to delete project")
	}
	return nil
}
