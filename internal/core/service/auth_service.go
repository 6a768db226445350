package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrops/payroll-system/internal/core/domain"
	"github.com/hrops/payroll-system/internal/core/ports"
)

// AuthService implements login, self-service registration and logout.
type AuthService struct {
	employees ports.EmployeeRepository
	roles     ports.RoleRepository
	revoker   ports.TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(employees ports.EmployeeRepository, roles ports.RoleRepository, revoker ports.TokenRevoker, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		employees: employees,
		roles:     roles,
		revoker:   revoker,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login verifies the credentials against the stored hash and mints a token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Employee, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	emp, err := s.employees.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(emp)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", emp.Username).Str("authority", domain.AuthorityFor(emp.Role.Name)).Msg("login succeeded")
	return token, emp, nil
}

// Register creates a new employee account. Checks run in a fixed order and
// the first failing one wins: username non-empty, username unique, password
// non-empty, role resolvable.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Employee, error) {
	if input.Username == "" {
		return nil, domain.ErrEmptyUsername
	}

	if _, err := s.employees.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}

	if input.Password == "" {
		return nil, domain.ErrEmptyPassword
	}

	roleName := input.RoleName
	if roleName == "" {
		roleName = domain.DefaultRoleName
	}
	role, err := s.roles.FindByName(ctx, roleName)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.employees.Create(ctx, &domain.Employee{
		Name:         input.Name,
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         *role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role.Name).Msg("employee registered")
	return created, nil
}

// Logout revokes the token id until the token would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, tokenID, ttl); err != nil {
		return err
	}
	s.logger.Info().Str("token_id", tokenID).Msg("token revoked")
	return nil
}

func (s *AuthService) generateToken(emp *domain.Employee) (string, error) {
	claims := jwt.MapClaims{
		"sub":      emp.ID,
		"username": emp.Username,
		"name":     emp.Name,
		"role":     emp.Role.Name,
		"jti":      uuid.NewString(),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
