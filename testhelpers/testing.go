package testhelpers

import (
	"context"
	"os"
	"testing"

	"saasboard/internal/models"
	"saasboard/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestDB holds the database connection for testing
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func() error
}

// SetupTestDB connects to TEST_DATABASE_URL and applies the schema. The test
// is skipped when the variable is unset.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, connString, database.Options{MaxConns: 10})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("Failed to apply schema: %v", err)
	}

	db := &TestDB{
		Pool: pool,
		Cleanup: func() error {
			_, err := pool.Exec(context.Background(), `TRUNCATE tasks, projects, users, tenants CASCADE`)
			pool.Close()
			return err
		},
	}
	t.Cleanup(func() {
		if err := db.Cleanup(); err != nil {
			t.Errorf("Failed to clean test database: %v", err)
		}
	})
	return db
}

// SetupTestTenant inserts an active tenant with the given caps
func SetupTestTenant(t *testing.T, db *TestDB, maxUsers, maxProjects int) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		ID:               uuid.New(),
		Name:             "Test Tenant",
		Subdomain:        "t-" + uuid.NewString()[:8],
		Status:           models.TenantStatusActive,
		SubscriptionPlan: models.PlanFree,
		MaxUsers:         maxUsers,
		MaxProjects:      maxProjects,
	}
	query := `
		INSERT INTO tenants (id, name, subdomain, status, subscription_plan, max_users, max_projects)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := db.Pool.Exec(context.Background(), query,
		tenant.ID, tenant.Name, tenant.Subdomain, tenant.Status, tenant.SubscriptionPlan, tenant.MaxUsers, tenant.MaxProjects)
	if err != nil {
		t.Fatalf("Failed to create test tenant: %v", err)
	}
	return tenant
}

// SetupTestUser inserts an active user. The password hash is not a valid bcrypt hash.
func SetupTestUser(t *testing.T, db *TestDB, tenantID uuid.UUID, role string) *models.User {
	t.Helper()

	user := &models.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        uuid.NewString()[:8] + "@example.com",
		PasswordHash: "not-a-hash",
		FullName:     "Test User",
		Role:         role,
		IsActive:     true,
	}
	query := `
		INSERT INTO users (id, tenant_id, email, password_hash, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := db.Pool.Exec(context.Background(), query,
		user.ID, user.TenantID, user.Email, user.PasswordHash, user.FullName, user.Role, user.IsActive)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}
