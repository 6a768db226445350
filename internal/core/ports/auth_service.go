package ports

import (
	"context"
	"time"

	"github.com/hrops/payroll-system/internal/core/domain"
)

// RegisterInput carries the fields of a self-service registration.
// RoleName is optional; the service falls back to the default role.
type RegisterInput struct {
	Name     string
	Username string
	Password string
	RoleName string
}

type AuthService interface {
	// Login verifies the credentials and returns a signed token together
	// with the authenticated employee.
	Login(ctx context.Context, username, password string) (string, *domain.Employee, error)
	Register(ctx context.Context, input RegisterInput) (*domain.Employee, error)
	// Logout revokes the token identified by tokenID for the remainder of
	// its lifetime.
	Logout(ctx context.Context, tokenID string, ttl time.Duration) error
}
