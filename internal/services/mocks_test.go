package services

import (
	"context"
	"testing"

	"saasboard/internal/common"
	"saasboard/internal/models"
	"saasboard/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}

func (m *MockTenantRepository) GetBySubdomain(ctx context.Context, subdomain string) (*models.Tenant, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}

func (m *MockTenantRepository) LockByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*models.User, error) {
	args := m.Called(ctx, tenantID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, tenantID uuid.UUID) ([]*models.User, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, tenantID, id uuid.UUID, upd models.UserUpdate) (*models.User, error) {
	args := m.Called(ctx, tenantID, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Deactivate(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockUserRepository) CountActive(ctx context.Context, tenantID uuid.UUID) (int, error) {
	args := m.Called(ctx, tenantID)
	return args.Int(0), args.Error(1)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Project, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context, tenantID uuid.UUID) ([]*models.Project, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, tenantID, id uuid.UUID, upd models.ProjectUpdate) (*models.Project, error) {
	args := m.Called(ctx, tenantID, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockProjectRepository) Count(ctx context.Context, tenantID uuid.UUID) (int, error) {
	args := m.Called(ctx, tenantID)
	return args.Int(0), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Task, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByProject(ctx context.Context, tenantID, projectID uuid.UUID) ([]*models.Task, error) {
	args := m.Called(ctx, tenantID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, tenantID, id uuid.UUID, upd models.TaskUpdate) (*models.Task, error) {
	args := m.Called(ctx, tenantID, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// MockStore hands out the same mock repositories inside and outside WithTx
// and counts how each transaction ended.
type MockStore struct {
	tenants  *MockTenantRepository
	users    *MockUserRepository
	projects *MockProjectRepository
	tasks    *MockTaskRepository

	beginErr  error
	commits   int
	rollbacks int
}

func NewMockStore(t *testing.T) *MockStore {
	s := &MockStore{
		tenants:  &MockTenantRepository{},
		users:    &MockUserRepository{},
		projects: &MockProjectRepository{},
		tasks:    &MockTaskRepository{},
	}
	s.tenants.Test(t)
	s.users.Test(t)
	s.projects.Test(t)
	s.tasks.Test(t)
	return s
}

func (s *MockStore) Tenants() repositories.TenantRepository   { return s.tenants }
func (s *MockStore) Users() repositories.UserRepository       { return s.users }
func (s *MockStore) Projects() repositories.ProjectRepository { return s.projects }
func (s *MockStore) Tasks() repositories.TaskRepository       { return s.tasks }

func (s *MockStore) WithTx(ctx context.Context, fn func(tx repositories.Store) error) error {
	if s.beginErr != nil {
		return s.beginErr
	}
	if err := fn(s); err != nil {
		s.rollbacks++
		return err
	}
	s.commits++
	return nil
}

func (s *MockStore) AssertExpectations(t *testing.T) {
	s.tenants.AssertExpectations(t)
	s.users.AssertExpectations(t)
	s.projects.AssertExpectations(t)
	s.tasks.AssertExpectations(t)
}

func adminIdentity(tenantID uuid.UUID) common.Identity {
	return common.Identity{UserID: uuid.New(), TenantID: tenantID, Role: models.RoleTenantAdmin}
}

func memberIdentity(tenantID uuid.UUID) common.Identity {
	return common.Identity{UserID: uuid.New(), TenantID: tenantID, Role: models.RoleMember}
}

func activeTenant(limits models.PlanLimits) *models.Tenant {
	return &models.Tenant{
		ID:               uuid.New(),
		Name:             "Acme",
		Subdomain:        "acme",
		Status:           models.TenantStatusActive,
		SubscriptionPlan: models.PlanFree,
		MaxUsers:         limits.MaxUsers,
		MaxProjects:      limits.MaxProjects,
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func assertKind(t *testing.T, err error, kind common.ErrorKind, message string) {
	t.Helper()
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, kind, appErr.Kind)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}
