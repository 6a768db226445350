package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrops/payroll-system/internal/api/middleware"
	"github.com/hrops/payroll-system/internal/core/domain"
	"github.com/hrops/payroll-system/internal/core/ports"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, username, password string) (string, *domain.Employee, error)
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.Employee, error)
	logoutFn   func(ctx context.Context, tokenID string, ttl time.Duration) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.Employee, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Employee, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Logout(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.logoutFn(ctx, tokenID, ttl)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testEmployee() *domain.Employee {
	return &domain.Employee{
		ID:       3,
		Name:     "Bilbo Baggins",
		Username: "bilbo",
		Role:     domain.Role{ID: 2, Name: "developer"},
	}
}

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.Employee, error) {
			if input.Username != "bilbo" || input.Password != "password123" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return testEmployee(), nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register", `{"name":"Bilbo Baggins","username":"bilbo","password":"password123"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "" {
		t.Fatalf("registration must not mint a token")
	}
	if resp.Employee.Username != "bilbo" || resp.Employee.Role.Name != "developer" {
		t.Fatalf("unexpected employee payload: %+v", resp.Employee)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.Employee, error) {
			return nil, domain.ErrDuplicateUsername
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register", `{"username":"bilbo","password":"pw"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"empty username", domain.ErrEmptyUsername},
		{"empty password", domain.ErrEmptyPassword},
		{"unknown role", domain.ErrRoleNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubAuthService{
				registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.Employee, error) {
					return nil, tc.err
				},
			}
			h := NewAuthHandler(svc)

			c, rec := newJSONContext(t, http.MethodPost, "/auth/register", `{"username":"x","password":"y"}`)
			if err := h.Register(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAuthHandler_Login_OK(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, *domain.Employee, error) {
			if username != "bilbo" || password != "password123" {
				t.Fatalf("unexpected credentials: %s/%s", username, password)
			}
			return "signed-token", testEmployee(), nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login", `{"username":"bilbo","password":"password123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("expected token in response, got %q", resp.Token)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.Employee, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login", `{"username":"ghost","password":"nope"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var gotTokenID string
	var gotTTL time.Duration
	svc := &stubAuthService{
		logoutFn: func(_ context.Context, tokenID string, ttl time.Duration) error {
			gotTokenID, gotTTL = tokenID, ttl
			return nil
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/logout", "")
	c.Set(middleware.PrincipalKey, domain.Principal{EmployeeID: 3, Username: "bilbo", Role: "developer"})
	c.Set(middleware.TokenIDKey, "jti-1")
	c.Set(middleware.TokenExpKey, time.Now().Add(time.Hour))

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotTokenID != "jti-1" {
		t.Fatalf("expected revocation of jti-1, got %q", gotTokenID)
	}
	if gotTTL <= 0 || gotTTL > time.Hour {
		t.Fatalf("expected remaining lifetime as ttl, got %v", gotTTL)
	}
}

func TestAuthHandler_Logout_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodPost, "/auth/logout", "")
	err := h.Logout(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_CurrentUser(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newJSONContext(t, http.MethodGet, "/auth/current-user", "")
	c.Set(middleware.PrincipalKey, domain.Principal{EmployeeID: 1, Username: "admin", Name: "Admin User", Role: domain.RoleNameAdmin})

	if err := h.CurrentUser(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp principalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Username != "admin" || resp.Role != domain.RoleNameAdmin {
		t.Fatalf("unexpected principal payload: %+v", resp)
	}
	if len(resp.Authorities) != 1 || resp.Authorities[0] != domain.AuthorityAdmin {
		t.Fatalf("expected authorities [%s], got %v", domain.AuthorityAdmin, resp.Authorities)
	}
}
