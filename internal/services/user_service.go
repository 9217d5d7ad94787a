package services

import (
	"context"
	"errors"
	"strings"

	"saasboard/internal/common"
	"saasboard/internal/logger"
	"saasboard/internal/models"
	"saasboard/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService manages the users of a tenant
type UserService interface {
	Create(ctx context.Context, actor common.Identity, req CreateUserRequest) (*models.User, error)
	List(ctx context.Context, actor common.Identity) ([]*models.User, error)
	Update(ctx context.Context, actor common.Identity, id uuid.UUID, req UpdateUserRequest) (*models.User, error)
	Deactivate(ctx context.Context, actor common.Identity, id uuid.UUID) error
}

// CreateUserRequest represents the user creation request payload
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	FullName string `json:"fullName" validate:"required,max=255"`
	Role     string `json:"role" validate:"required,oneof=tenant_admin member"`
}

// UpdateUserRequest is a partial update; omitted fields are unchanged
type UpdateUserRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=1,max=255"`
	Role     *string `json:"role" validate:"omitempty,oneof=tenant_admin member"`
	IsActive *bool   `json:"isActive"`
}

type userService struct {
	store repositories.Store
	quota QuotaService
}

func NewUserService(store repositories.Store, quota QuotaService) UserService {
	return &userService{store: store, quota: quota}
}

func (s *userService) Create(ctx context.Context, actor common.Identity, req CreateUserRequest) (*models.User, error) {
	if err := requireTenantAdmin(actor, "create users"); err != nil {
		return nil, err
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Email == "" || req.Password == "" || req.FullName == "" || req.Role == "" {
		return nil, common.NewBadRequest("All fields are required")
	}
	if err := common.ValidateStruct(&req); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return nil, common.NewInternal("Failed to create user", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		TenantID:     actor.TenantID,
		Email:        req.Email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		Role:         req.Role,
		IsActive:     true,
	}

	err = s.store.WithTx(ctx, func(tx repositories.Store) error {
		if err := s.quota.EnsureUserCapacity(ctx, tx, actor.TenantID); err != nil {
			return err
		}

		_, err := tx.Users().GetByEmail(ctx, actor.TenantID, user.Email)
		switch {
		case err == nil:
			return common.NewConflict("User already exists")
		case !errors.Is(err, repositories.ErrNotFound):
			return err
		}

		return tx.Users().Create(ctx, user)
	})
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, common.NewConflict("User already exists")
		}
		return nil, repoError(err, "User", "Failed to create user")
	}

	logger.FromContext(ctx).Info("user created",
		zap.String("tenant_id", actor.TenantID.String()),
		zap.String("user_id", user.ID.String()),
		zap.String("created_by", actor.UserID.String()),
	)
	return user, nil
}

func (s *userService) List(ctx context.Context, actor common.Identity) ([]*models.User, error) {
	users, err := s.store.Users().List(ctx, actor.TenantID)
	if err != nil {
		return nil, common.NewInternal("Failed to list users", err)
	}
	return users, nil
}

// Update applies a partial update. Reactivating a user counts against the user quota.
func (s *userService) Update(ctx context.Context, actor common.Identity, id uuid.UUID, req UpdateUserRequest) (*models.User, error) {
	if err := requireTenantAdmin(actor, "update users"); err != nil {
		return nil, err
	}
	if req.FullName != nil {
		trimmed := strings.TrimSpace(*req.FullName)
		req.FullName = &trimmed
	}
	if err := common.ValidateStruct(&req); err != nil {
		return nil, err
	}

	upd := models.UserUpdate{FullName: req.FullName, Role: req.Role, IsActive: req.IsActive}

	var updated *models.User
	err := s.store.WithTx(ctx, func(tx repositories.Store) error {
		if req.IsActive != nil && *req.IsActive {
			current, err := tx.Users().GetByID(ctx, actor.TenantID, id)
			if err != nil {
				return err
			}
			if !current.IsActive {
				if err := s.quota.EnsureUserCapacity(ctx, tx, actor.TenantID); err != nil {
					return err
				}
			}
		}

		var err error
		updated, err = tx.Users().Update(ctx, actor.TenantID, id, upd)
		return err
	})
	if err != nil {
		return nil, repoError(err, "User", "Failed to update user")
	}
	return updated, nil
}

// Deactivate soft-deletes a user; repeating it is not an error.
func (s *userService) Deactivate(ctx context.Context, actor common.Identity, id uuid.UUID) error {
	if err := requireTenantAdmin(actor, "delete users"); err != nil {
		return err
	}

	if err := s.store.Users().Deactivate(ctx, actor.TenantID, id); err != nil {
		return repoError(err, "User", "Failed to deactivate user")
	}

	logger.FromContext(ctx).Info("user deactivated",
		zap.String("tenant_id", actor.TenantID.String()),
		zap.String("user_id", id.String()),
	)
	return nil
}
