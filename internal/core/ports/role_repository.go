package ports

import (
	"context"

	"github.com/hrops/payroll-system/internal/core/domain"
)

// RoleRepository defines persistence operations for roles.
type RoleRepository interface {
	Create(ctx context.Context, r *domain.Role) (*domain.Role, error)
	// Upsert persists the role under its externally supplied id.
	Upsert(ctx context.Context, r *domain.Role) (*domain.Role, error)
	FindByID(ctx context.Context, id int64) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
	Delete(ctx context.Context, id int64) error
}
