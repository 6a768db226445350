package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hrops/payroll-system/internal/core/domain"
	"github.com/hrops/payroll-system/internal/core/ports"
)

// RoleService implements role CRUD. Deleting a role that employees still
// reference is permitted; those employees are left with a dangling role
// reference that reads back as an empty role.
type RoleService struct {
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, logger: logger}
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.roles.FindAll(ctx)
}

func (s *RoleService) Get(ctx context.Context, id int64) (*domain.Role, error) {
	return s.roles.FindByID(ctx, id)
}

func (s *RoleService) Create(ctx context.Context, input ports.RoleInput) (*domain.Role, error) {
	created, err := s.roles.Create(ctx, &domain.Role{Name: input.Name})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("role_id", created.ID).Str("name", created.Name).Msg("role created")
	return created, nil
}

// Replace upserts the role at id: an existing role is renamed, an absent
// one is created bearing the supplied id.
func (s *RoleService) Replace(ctx context.Context, id int64, input ports.RoleInput) (*domain.Role, error) {
	existing, err := s.roles.FindByID(ctx, id)
	switch {
	case err == nil:
		existing.Name = input.Name
	case errors.Is(err, domain.ErrRoleNotFound):
		existing = &domain.Role{ID: id, Name: input.Name}
	default:
		return nil, err
	}

	replaced, err := s.roles.Upsert(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("role_id", replaced.ID).Str("name", replaced.Name).Msg("role replaced")
	return replaced, nil
}

func (s *RoleService) Delete(ctx context.Context, id int64) error {
	if err := s.roles.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("role_id", id).Msg("role deleted")
	return nil
}
