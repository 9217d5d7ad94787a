package services

import (
	"context"
	"errors"

	"saasboard/internal/common"
	"saasboard/internal/metrics"
	"saasboard/internal/models"
	"saasboard/internal/repositories"

	"github.com/google/uuid"
)

// QuotaService enforces per-tenant caps. Both checks lock the tenant row, so
// they must run inside the transaction that performs the insert.
type QuotaService interface {
	EnsureUserCapacity(ctx context.Context, tx repositories.Store, tenantID uuid.UUID) error
	EnsureProjectCapacity(ctx context.Context, tx repositories.Store, tenantID uuid.UUID) error
}

type quotaService struct {
	metrics *metrics.Metrics
}

func NewQuotaService(m *metrics.Metrics) QuotaService {
	return &quotaService{metrics: m}
}

func (s *quotaService) EnsureUserCapacity(ctx context.Context, tx repositories.Store, tenantID uuid.UUID) error {
	tenant, err := lockTenant(ctx, tx, tenantID)
	if err != nil {
		return err
	}

	active, err := tx.Users().CountActive(ctx, tenantID)
	if err != nil {
		return common.NewInternal("Failed to check user quota", err)
	}
	if active >= tenant.MaxUsers {
		s.metrics.RecordQuotaRejection("user")
		return common.NewForbidden("User limit reached for this tenant")
	}
	return nil
}

func (s *quotaService) EnsureProjectCapacity(ctx context.Context, tx repositories.Store, tenantID uuid.UUID) error {
	tenant, err := lockTenant(ctx, tx, tenantID)
	if err != nil {
		return err
	}

	count, err := tx.Projects().Count(ctx, tenantID)
	if err != nil {
		return common.NewInternal("Failed to check project quota", err)
	}
	if count >= tenant.MaxProjects {
		s.metrics.RecordQuotaRejection("project")
		return common.NewForbidden("Project limit reached for this tenant")
	}
	return nil
}

func lockTenant(ctx context.Context, tx repositories.Store, tenantID uuid.UUID) (*models.Tenant, error) {
	tenant, err := tx.Tenants().LockByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, common.NewNotFound("Tenant")
		}
		return nil, common.NewInternal("Failed to load tenant", err)
	}
	return tenant, nil
}
