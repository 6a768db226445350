package ports

import (
	"context"

	"github.com/hrops/payroll-system/internal/core/domain"
)

// EmployeeInput carries the writable fields of an employee record.
// RoleID must resolve in the role store.
type EmployeeInput struct {
	Name     string
	Username string
	Password string
	RoleID   int64
}

// EmployeeService defines use-case operations for employee records. Every
// operation takes the requesting principal and applies the access decision
// before touching the store.
type EmployeeService interface {
	List(ctx context.Context, p domain.Principal) ([]domain.Employee, error)
	Get(ctx context.Context, p domain.Principal, id int64) (*domain.Employee, error)
	Create(ctx context.Context, p domain.Principal, input EmployeeInput) (*domain.Employee, error)
	// Replace has upsert semantics: an absent id creates a record bearing
	// that id, an existing one has its name, role and (only when supplied)
	// password overwritten.
	Replace(ctx context.Context, p domain.Principal, id int64, input EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, p domain.Principal, id int64) error
}
