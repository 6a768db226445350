package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrops/payroll-system/internal/core/domain"
	"github.com/hrops/payroll-system/internal/core/ports"
)

// EmployeeService implements employee CRUD. The requesting principal is
// passed into every operation and checked before the store is touched.
type EmployeeService struct {
	employees ports.EmployeeRepository
	roles     ports.RoleRepository
	logger    zerolog.Logger
}

func NewEmployeeService(employees ports.EmployeeRepository, roles ports.RoleRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{employees: employees, roles: roles, logger: logger}
}

// List returns all employee records. Admin only.
func (s *EmployeeService) List(ctx context.Context, p domain.Principal) ([]domain.Employee, error) {
	if !p.CanList() {
		return nil, domain.ErrForbidden
	}
	return s.employees.FindAll(ctx)
}

// Get returns one employee record, gated self-or-admin. The access check
// runs before the lookup, so a foreign id yields access denied even when no
// such record exists.
func (s *EmployeeService) Get(ctx context.Context, p domain.Principal, id int64) (*domain.Employee, error) {
	if !p.CanView(id) {
		return nil, domain.ErrForbidden
	}
	return s.employees.FindByID(ctx, id)
}

// Create persists a new employee under a generated id. Admin only.
func (s *EmployeeService) Create(ctx context.Context, p domain.Principal, input ports.EmployeeInput) (*domain.Employee, error) {
	if !p.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	role, err := s.roles.FindByID(ctx, input.RoleID)
	if err != nil {
		return nil, err
	}

	hash, err := hashIfPresent(input.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.employees.Create(ctx, &domain.Employee{
		Name:         input.Name,
		Username:     input.Username,
		PasswordHash: hash,
		Role:         *role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("employee_id", created.ID).Str("username", created.Username).Msg("employee created")
	return created, nil
}

// Replace upserts the employee record at id, gated self-or-admin. An
// existing record keeps its username, and keeps its stored password hash
// when the supplied password is empty; an absent record is created bearing
// the supplied id.
func (s *EmployeeService) Replace(ctx context.Context, p domain.Principal, id int64, input ports.EmployeeInput) (*domain.Employee, error) {
	if !p.CanEdit(id) {
		return nil, domain.ErrForbidden
	}

	role, err := s.roles.FindByID(ctx, input.RoleID)
	if err != nil {
		return nil, err
	}

	existing, err := s.employees.FindByID(ctx, id)
	switch {
	case err == nil:
		existing.Name = input.Name
		existing.Role = *role
		if input.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			existing.PasswordHash = string(hash)
		}
	case errors.Is(err, domain.ErrEmployeeNotFound):
		hash, err := hashIfPresent(input.Password)
		if err != nil {
			return nil, err
		}
		existing = &domain.Employee{
			ID:           id,
			Name:         input.Name,
			Username:     input.Username,
			PasswordHash: hash,
			Role:         *role,
		}
	default:
		return nil, err
	}

	replaced, err := s.employees.Upsert(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("employee_id", replaced.ID).Msg("employee replaced")
	return replaced, nil
}

// Delete removes the employee record at id. Admin only.
func (s *EmployeeService) Delete(ctx context.Context, p domain.Principal, id int64) error {
	if !p.CanDelete() {
		return domain.ErrForbidden
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("employee_id", id).Msg("employee deleted")
	return nil
}

func hashIfPresent(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
