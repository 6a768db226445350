package ports

import (
	"context"

	"github.com/hrops/payroll-system/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employee records.
// Implementations return employees with their role reference resolved.
type EmployeeRepository interface {
	// Create persists a new employee under a freshly assigned id.
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	// Upsert persists the employee under its externally supplied id,
	// replacing any existing record with that id.
	Upsert(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	FindByUsername(ctx context.Context, username string) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}
