package repositories

import (
	"context"
	"testing"
	"time"

	"saasboard/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TaskRepoTestSuite struct {
	suite.Suite
	mock      pgxmock.PgxPoolIface
	repo      TaskRepository
	tenantID  uuid.UUID
	projectID uuid.UUID
	taskID    uuid.UUID
	context   context.Context
}

func (suite *TaskRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.repo = NewTaskRepo(mock)
	suite.tenantID = uuid.New()
	suite.projectID = uuid.New()
	suite.taskID = uuid.New()
	suite.context = context.Background()
}

func (suite *TaskRepoTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestTaskRepoTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepoTestSuite))
}

func (suite *TaskRepoTestSuite) TestCreate_Unassigned() {
	now := time.Now()
	task := &models.Task{
		ID: suite.taskID, TenantID: suite.tenantID, ProjectID: suite.projectID,
		Title: "Write docs", Status: models.TaskStatusTodo,
	}

	suite.mock.ExpectQuery(re("INSERT INTO tasks")).
		WithArgs(suite.taskID, suite.tenantID, suite.projectID, "Write docs", "", "todo", (*uuid.UUID)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	suite.NoError(suite.repo.Create(suite.context, task))
	suite.Equal(now, task.CreatedAt)
}

func (suite *TaskRepoTestSuite) TestListByProject_ScopedByTenantAndProject() {
	now := time.Now()
	assignee := uuid.New()
	suite.mock.ExpectQuery(re("WHERE tenant_id = $1 AND project_id = $2")).
		WithArgs(suite.tenantID, suite.projectID).
		WillReturnRows(pgxmock.NewRows(taskCols).
			AddRow(uuid.New(), suite.tenantID, suite.projectID, "B", "", "done", &assignee, now, now).
			AddRow(uuid.New(), suite.tenantID, suite.projectID, "A", "", "todo", nil, now.Add(-time.Minute), now))

	tasks, err := suite.repo.ListByProject(suite.context, suite.tenantID, suite.projectID)
	suite.NoError(err)
	suite.Len(tasks, 2)
	suite.Equal("B", tasks[0].Title)
	suite.Require().NotNil(tasks[0].AssignedTo)
	suite.Equal(assignee, *tasks[0].AssignedTo)
	suite.Nil(tasks[1].AssignedTo)
}

func (suite *TaskRepoTestSuite) TestUpdate_StatusLeavesOthers() {
	now := time.Now()
	done := models.TaskStatusDone
	upd := models.TaskUpdate{Status: &done}

	suite.mock.ExpectQuery(re("assigned_to = COALESCE($4, assigned_to)")).
		WithArgs((*string)(nil), (*string)(nil), &done, (*uuid.UUID)(nil), suite.tenantID, suite.taskID).
		WillReturnRows(pgxmock.NewRows(taskCols).
			AddRow(suite.taskID, suite.tenantID, suite.projectID, "Write docs", "all of them", "done", nil, now, now))

	task, err := suite.repo.Update(suite.context, suite.tenantID, suite.taskID, upd)
	suite.NoError(err)
	suite.Equal("done", task.Status)
	suite.Equal("Write docs", task.Title)
	suite.Equal("all of them", task.Description)
}

func (suite *TaskRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(re("FROM tasks WHERE tenant_id = $1 AND id = $2")).
		WithArgs(suite.tenantID, suite.taskID).
		WillReturnError(pgx.ErrNoRows)

	_, err := suite.repo.GetByID(suite.context, suite.tenantID, suite.taskID)
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *TaskRepoTestSuite) TestDelete() {
	suite.mock.ExpectExec(re("DELETE FROM tasks WHERE tenant_id = $1 AND id = $2")).
		WithArgs(suite.tenantID, suite.taskID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	suite.NoError(suite.repo.Delete(suite.context, suite.tenantID, suite.taskID))
}

func (suite *TaskRepoTestSuite) TestDelete_NotFound() {
	suite.mock.ExpectExec(re("DELETE FROM tasks")).
		WithArgs(suite.tenantID, suite.taskID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	suite.ErrorIs(suite.repo.Delete(suite.context, suite.tenantID, suite.taskID), ErrNotFound)
}
