package services

import (
	"errors"

	"saasboard/internal/common"
	"saasboard/internal/models"
	"saasboard/internal/repositories"
)

func requireTenantAdmin(actor common.Identity, action string) error {
	if actor.Role != models.RoleTenantAdmin {
		return common.NewForbidden("Only tenant admins can " + action)
	}
	return nil
}

// repoError maps a repository error to the AppError returned to callers.
// AppErrors raised inside a transaction pass through unchanged.
func repoError(err error, resource, failure string) error {
	var appErr *common.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, repositories.ErrNotFound):
		return common.NewNotFound(resource)
	default:
		return common.NewInternal(failure, err)
	}
}
