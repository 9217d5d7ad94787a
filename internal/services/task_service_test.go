package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"saasboard/internal/common"
	"saasboard/internal/models"
	"saasboard/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TaskServiceTestSuite struct {
	suite.Suite
	store    *MockStore
	service  TaskService
	tenantID uuid.UUID
	actor    common.Identity
	project  *models.Project
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.store = NewMockStore(suite.T())
	suite.service = NewTaskService(suite.store)
	suite.tenantID = uuid.New()
	suite.actor = memberIdentity(suite.tenantID)
	suite.project = &models.Project{ID: uuid.New(), TenantID: suite.tenantID, Name: "Website"}
}

func (suite *TaskServiceTestSuite) TearDownTest() {
	suite.store.AssertExpectations(suite.T())
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}

func (suite *TaskServiceTestSuite) TestCreate_Success() {
	ctx := context.Background()
	assignee := uuid.New()
	suite.store.projects.On("GetByID", ctx, suite.tenantID, suite.project.ID).Return(suite.project, nil)
	suite.store.users.On("GetByID", ctx, suite.tenantID, assignee).Return(&models.User{ID: assignee}, nil)
	suite.store.tasks.On("Create", ctx, mock.MatchedBy(func(t *models.Task) bool {
		return t.Status == models.TaskStatusTodo && t.AssignedTo != nil && *t.AssignedTo == assignee
	})).Return(nil)

	task, err := suite.service.Create(ctx, suite.actor, CreateTaskRequest{
		ProjectID:  suite.project.ID.String(),
		Title:      "Write copy",
		AssignedTo: strPtr(assignee.String()),
	})

	suite.Require().NoError(err)
	suite.Equal(suite.project.ID, task.ProjectID)
	suite.Equal(suite.tenantID, task.TenantID)
}

func (suite *TaskServiceTestSuite) TestCreate_Unassigned() {
	ctx := context.Background()
	suite.store.projects.On("GetByID", ctx, suite.tenantID, suite.project.ID).Return(suite.project, nil)
	suite.store.tasks.On("Create", ctx, mock.MatchedBy(func(t *models.Task) bool { return t.AssignedTo == nil })).Return(nil)

	_, err := suite.service.Create(ctx, suite.actor, CreateTaskRequest{ProjectID: suite.project.ID.String(), Title: "Triage"})

	suite.NoError(err)
}

func (suite *TaskServiceTestSuite) TestCreate_RequiresProjectAndTitle() {
	_, err := suite.service.Create(context.Background(), suite.actor, CreateTaskRequest{Title: "Orphan"})

	assertKind(suite.T(), err, common.KindBadRequest, "projectId and title are required")
}

func (suite *TaskServiceTestSuite) TestCreate_ProjectInOtherTenant() {
	ctx := context.Background()
	suite.store.projects.On("GetByID", ctx, suite.tenantID, suite.project.ID).Return(nil, repositories.ErrNotFound)

	_, err := suite.service.Create(ctx, suite.actor, CreateTaskRequest{ProjectID: suite.project.ID.String(), Title: "X"})

	assertKind(suite.T(), err, common.KindNotFound, "Project not found")
	suite.store.tasks.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestCreate_ProjectDeletedBeforeInsert() {
	ctx := context.Background()
	suite.store.projects.On("GetByID", ctx, suite.tenantID, suite.project.ID).Return(suite.project, nil)
	suite.store.tasks.On("Create", ctx, mock.Anything).
		Return(fmt.Errorf("failed to insert task: %w", &pgconn.PgError{Code: "23503", ConstraintName: repositories.TaskProjectFK}))

	_, err := suite.service.Create(ctx, suite.actor, CreateTaskRequest{ProjectID: suite.project.ID.String(), Title: "Late"})

	assertKind(suite.T(), err, common.KindNotFound, "Project not found")
}

func (suite *TaskServiceTestSuite) TestCreate_InsertFails() {
	ctx := context.Background()
	suite.store.projects.On("GetByID", ctx, suite.tenantID, suite.project.ID).Return(suite.project, nil)
	suite.store.tasks.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := suite.service.Create(ctx, suite.actor, CreateTaskRequest{ProjectID: suite.project.ID.String(), Title: "Late"})

	assertKind(suite.T(), err, common.KindInternal, "Failed to create task")
}

func (suite *TaskServiceTestSuite) TestCreate_AssigneeInOtherTenant() {
	ctx := context.Background()
	assignee := uuid.New()
	suite.store.projects.On("GetByID", ctx, suite.tenantID, suite.project.ID).Return(suite.project, nil)
	suite.store.users.On("GetByID", ctx, suite.tenantID, assignee).Return(nil, repositories.ErrNotFound)

	_, err := suite.service.Create(ctx, suite.actor, CreateTaskRequest{
		ProjectID:  suite.project.ID.String(),
		Title:      "X",
		AssignedTo: strPtr(assignee.String()),
	})

	assertKind(suite.T(), err, common.KindNotFound, "Assignee not found")
}

func (suite *TaskServiceTestSuite) TestList() {
	ctx := context.Background()
	suite.store.tasks.On("ListByProject", ctx, suite.tenantID, suite.project.ID).Return([]*models.Task{{ID: uuid.New()}}, nil)

	tasks, err := suite.service.List(ctx, suite.actor, suite.project.ID.String())

	suite.Require().NoError(err)
	suite.Len(tasks, 1)
}

func (suite *TaskServiceTestSuite) TestList_ProjectIDRequired() {
	_, err := suite.service.List(context.Background(), suite.actor, "")

	assertKind(suite.T(), err, common.KindBadRequest, "projectId query param required")
}

func (suite *TaskServiceTestSuite) TestList_ProjectIDMalformed() {
	_, err := suite.service.List(context.Background(), suite.actor, "not-a-uuid")

	assertKind(suite.T(), err, common.KindBadRequest, "projectId must be a valid UUID")
}

func (suite *TaskServiceTestSuite) TestUpdate_StatusTransition() {
	ctx := context.Background()
	id := uuid.New()
	upd := models.TaskUpdate{Status: strPtr(models.TaskStatusInProgress)}
	suite.store.tasks.On("Update", ctx, suite.tenantID, id, upd).Return(&models.Task{ID: id, Status: models.TaskStatusInProgress}, nil)

	task, err := suite.service.Update(ctx, suite.actor, id, UpdateTaskRequest{Status: strPtr("in_progress")})

	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusInProgress, task.Status)
}

func (suite *TaskServiceTestSuite) TestUpdate_InvalidStatus() {
	_, err := suite.service.Update(context.Background(), suite.actor, uuid.New(), UpdateTaskRequest{Status: strPtr("blocked")})

	assertKind(suite.T(), err, common.KindBadRequest, "")
}

func (suite *TaskServiceTestSuite) TestUpdate_Reassign() {
	ctx := context.Background()
	id := uuid.New()
	assignee := uuid.New()
	suite.store.users.On("GetByID", ctx, suite.tenantID, assignee).Return(&models.User{ID: assignee}, nil)
	suite.store.tasks.On("Update", ctx, suite.tenantID, id, models.TaskUpdate{AssignedTo: &assignee}).
		Return(&models.Task{ID: id, AssignedTo: &assignee}, nil)

	task, err := suite.service.Update(ctx, suite.actor, id, UpdateTaskRequest{AssignedTo: strPtr(assignee.String())})

	suite.Require().NoError(err)
	suite.Equal(assignee, *task.AssignedTo)
}

func (suite *TaskServiceTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	id := uuid.New()
	suite.store.tasks.On("Update", ctx, suite.tenantID, id, mock.Anything).Return(nil, repositories.ErrNotFound)

	_, err := suite.service.Update(ctx, suite.actor, id, UpdateTaskRequest{Title: strPtr("Y")})

	assertKind(suite.T(), err, common.KindNotFound, "Task not found")
}

func (suite *TaskServiceTestSuite) TestDelete() {
	ctx := context.Background()
	id := uuid.New()
	suite.store.tasks.On("Delete", ctx, suite.tenantID, id).Return(repositories.ErrNotFound)

	err := suite.service.Delete(ctx, suite.actor, id)

	assertKind(suite.T(), err, common.KindNotFound, "Task not found")
}
