package repositories

import (
	"context"
	"fmt"

	"saasboard/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Foreign keys on tasks, as named in schema.sql.
const (
	TaskProjectFK  = "tasks_project_id_fkey"
	TaskAssigneeFK = "tasks_assigned_to_fkey"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Task, error)
	ListByProject(ctx context.Context, tenantID, projectID uuid.UUID) ([]*models.Task, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, upd models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type taskRepo struct {
	db DB
}

func NewTaskRepo(db DB) TaskRepository {
	return &taskRepo{db: db}
}

const taskColumns = `id, tenant_id, project_id, title, description, status, assigned_to, created_at, updated_at`

func scanTask(row pgx.Row) (*models.Task, error) {
	t := &models.Task{}
	err := row.Scan(&t.ID, &t.TenantID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.AssignedTo, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (r *taskRepo) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, tenant_id, project_id, title, description, status, assigned_to, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		task.ID, task.TenantID, task.ProjectID, task.Title, task.Description, task.Status, task.AssignedTo,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (r *taskRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE tenant_id = $1 AND id = $2`
	return scanTask(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *taskRepo) ListByProject(ctx context.Context, tenantID, projectID uuid.UUID) ([]*models.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE tenant_id = $1 AND project_id = $2
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, tenantID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *taskRepo) Update(ctx context.Context, tenantID, id uuid.UUID, upd models.TaskUpdate) (*models.Task, error) {
	query := `
		UPDATE tasks
		SET title = COALESCE($1, title),
		    description = COALESCE($2, description),
		    status = COALESCE($3, status),
		    assigned_to = COALESCE($4, assigned_to),
		    updated_at = NOW()
		WHERE tenant_id = $5 AND id = $6
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query, upd.Title, upd.Description, upd.Status, upd.AssignedTo, tenantID, id))
}

func (r *taskRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
