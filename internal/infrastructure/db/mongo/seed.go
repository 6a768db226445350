package mongo

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrops/payroll-system/internal/core/domain"
)

// Seed preloads the demo roles and accounts. It is idempotent: records that
// already exist are left untouched, so restarting the service never resets
// a changed password.
func Seed(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	roles := NewRoleRepository(db)
	employees := NewEmployeeRepository(db)

	roleNames := []string{"developer", "tester", domain.RoleNameAdmin, "manager", domain.DefaultRoleName}
	byName := make(map[string]domain.Role, len(roleNames))
	for _, name := range roleNames {
		role, err := roles.FindByName(ctx, name)
		if errors.Is(err, domain.ErrRoleNotFound) {
			role, err = roles.Create(ctx, &domain.Role{Name: name})
		}
		if err != nil {
			return err
		}
		byName[name] = *role
	}
	log.Info().Int("roles", len(byName)).Msg("preloaded roles")

	accounts := []struct {
		name     string
		username string
		password string
		role     string
	}{
		{"Bilbo Baggins", "bilbo", "password123", "developer"},
		{"Frodo Baggins", "frodo", "password123", "tester"},
		{"Admin User", "admin", "admin123", domain.RoleNameAdmin},
	}

	for _, a := range accounts {
		if _, err := employees.FindByUsername(ctx, a.username); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		created, err := employees.Create(ctx, &domain.Employee{
			Name:         a.name,
			Username:     a.username,
			PasswordHash: string(hash),
			Role:         byName[a.role],
		})
		if err != nil {
			return err
		}
		log.Info().Int64("employee_id", created.ID).Str("username", created.Username).Msg("preloaded employee")
	}

	return nil
}
