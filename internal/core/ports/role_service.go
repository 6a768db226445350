package ports

import (
	"context"

	"github.com/hrops/payroll-system/internal/core/domain"
)

// RoleInput carries the writable fields of a role.
type RoleInput struct {
	Name string
}

type RoleService interface {
	List(ctx context.Context) ([]domain.Role, error)
	Get(ctx context.Context, id int64) (*domain.Role, error)
	Create(ctx context.Context, input RoleInput) (*domain.Role, error)
	Replace(ctx context.Context, id int64, input RoleInput) (*domain.Role, error)
	Delete(ctx context.Context, id int64) error
}
