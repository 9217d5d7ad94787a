package services

import (
	"context"
	"errors"
	"strings"

	"saasboard/internal/common"
	"saasboard/internal/logger"
	"saasboard/internal/metrics"
	"saasboard/internal/models"
	"saasboard/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TenantService handles tenant onboarding
type TenantService interface {
	RegisterTenant(ctx context.Context, req RegisterTenantRequest) (*models.TenantRegistration, error)
}

// RegisterTenantRequest represents the request to register a tenant and its first admin
type RegisterTenantRequest struct {
	TenantName    string `json:"tenantName" validate:"required,max=255"`
	Subdomain     string `json:"subdomain" validate:"required,subdomain"`
	AdminEmail    string `json:"adminEmail" validate:"required,email,max=255"`
	AdminPassword string `json:"adminPassword" validate:"required,min=6,max=72"`
	AdminFullName string `json:"adminFullName" validate:"required,max=255"`
}

type tenantService struct {
	store   repositories.Store
	metrics *metrics.Metrics
}

func NewTenantService(store repositories.Store, m *metrics.Metrics) TenantService {
	return &tenantService{store: store, metrics: m}
}

// RegisterTenant creates the tenant and its admin in one transaction.
func (s *tenantService) RegisterTenant(ctx context.Context, req RegisterTenantRequest) (*models.TenantRegistration, error) {
	req.TenantName = strings.TrimSpace(req.TenantName)
	req.Subdomain = strings.ToLower(strings.TrimSpace(req.Subdomain))
	req.AdminEmail = strings.ToLower(strings.TrimSpace(req.AdminEmail))
	req.AdminFullName = strings.TrimSpace(req.AdminFullName)

	if req.TenantName == "" || req.Subdomain == "" || req.AdminEmail == "" || req.AdminPassword == "" || req.AdminFullName == "" {
		return nil, common.NewBadRequest("All fields are required")
	}
	if err := common.ValidateStruct(&req); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(req.AdminPassword)
	if err != nil {
		return nil, common.NewInternal("Failed to register tenant", err)
	}

	limits := models.LimitsForPlan(models.PlanFree)
	tenant := &models.Tenant{
		ID:               uuid.New(),
		Name:             req.TenantName,
		Subdomain:        req.Subdomain,
		Status:           models.TenantStatusActive,
		SubscriptionPlan: models.PlanFree,
		MaxUsers:         limits.MaxUsers,
		MaxProjects:      limits.MaxProjects,
	}
	admin := &models.User{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		Email:        req.AdminEmail,
		PasswordHash: passwordHash,
		FullName:     req.AdminFullName,
		Role:         models.RoleTenantAdmin,
		IsActive:     true,
	}

	err = s.store.WithTx(ctx, func(tx repositories.Store) error {
		_, err := tx.Tenants().GetBySubdomain(ctx, tenant.Subdomain)
		switch {
		case err == nil:
			return common.NewConflict("Subdomain already exists")
		case !errors.Is(err, repositories.ErrNotFound):
			return err
		}

		if err := tx.Tenants().Create(ctx, tenant); err != nil {
			return err
		}
		return tx.Users().Create(ctx, admin)
	})
	if err != nil {
		var appErr *common.AppError
		switch {
		case errors.As(err, &appErr):
			return nil, appErr
		case repositories.IsUniqueViolation(err):
			// a concurrent registration claimed the subdomain first
			return nil, common.NewConflict("Subdomain already exists")
		default:
			return nil, common.NewInternal("Failed to register tenant", err)
		}
	}

	s.metrics.RecordTenantRegistered()
	logger.FromContext(ctx).Info("tenant registered",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("subdomain", tenant.Subdomain),
	)

	return &models.TenantRegistration{
		TenantID:  tenant.ID,
		Subdomain: tenant.Subdomain,
		AdminUser: admin.Public(),
	}, nil
}
