package repositories

import (
	"context"
	"fmt"

	"saasboard/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Project, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]*models.Project, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, upd models.ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	Count(ctx context.Context, tenantID uuid.UUID) (int, error)
}

type projectRepo struct {
	db DB
}

func NewProjectRepo(db DB) ProjectRepository {
	return &projectRepo{db: db}
}

const projectColumns = `id, tenant_id, name, description, status, created_by, created_at, updated_at`

func scanProject(row pgx.Row) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(&p.ID, &p.TenantID, &p.Name, &p.Description, &p.Status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (r *projectRepo) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (id, tenant_id, name, description, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		project.ID, project.TenantID, project.Name, project.Description, project.Status, project.CreatedBy,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE tenant_id = $1 AND id = $2`
	return scanProject(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *projectRepo) List(ctx context.Context, tenantID uuid.UUID) ([]*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*models.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func (r *projectRepo) Update(ctx context.Context, tenantID, id uuid.UUID, upd models.ProjectUpdate) (*models.Project, error) {
	query := `
		UPDATE projects
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    status = COALESCE($3, status),
		    updated_at = NOW()
		WHERE tenant_id = $4 AND id = $5
		RETURNING ` + projectColumns
	return scanProject(r.db.QueryRow(ctx, query, upd.Name, upd.Description, upd.Status, tenantID, id))
}

// Delete removes the project; its tasks go with it through ON DELETE CASCADE.
func (r *projectRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *projectRepo) Count(ctx context.Context, tenantID uuid.UUID) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects WHERE tenant_id = $1`, tenantID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}
