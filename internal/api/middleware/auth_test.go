package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/hrops/payroll-system/internal/core/domain"
)

const testSecret = "test-secret"

type stubRevoker struct {
	revoked map[string]bool
	err     error
}

func (s *stubRevoker) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	if s.revoked == nil {
		s.revoked = make(map[string]bool)
	}
	s.revoked[tokenID] = true
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[tokenID], nil
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, authHeader string, revoker *stubRevoker) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(testSecret, revoker)(next)(c)
	return c, err
}

func TestAuth_ValidTokenSetsPrincipal(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	token := signToken(t, jwt.MapClaims{
		"sub":      float64(3),
		"username": "bilbo",
		"name":     "Bilbo Baggins",
		"role":     "developer",
		"jti":      "jti-1",
		"exp":      exp.Unix(),
	})

	c, err := runAuth(t, "Bearer "+token, &stubRevoker{})
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}

	p, ok := c.Get(PrincipalKey).(domain.Principal)
	if !ok {
		t.Fatalf("principal not set")
	}
	if p.EmployeeID != 3 || p.Username != "bilbo" || p.Role != "developer" {
		t.Fatalf("unexpected principal: %+v", p)
	}
	if got, _ := c.Get(TokenIDKey).(string); got != "jti-1" {
		t.Fatalf("token id not set, got %q", got)
	}
	if got, ok := c.Get(TokenExpKey).(time.Time); !ok || got.Unix() != exp.Unix() {
		t.Fatalf("token exp not set, got %v", c.Get(TokenExpKey))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runAuth(t, "", &stubRevoker{})
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Basic abc", "justatoken"} {
		_, err := runAuth(t, header, &stubRevoker{})
		assertHTTPStatus(t, err, http.StatusUnauthorized)
	}
}

func TestAuth_InvalidSignature(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, autherr := runAuth(t, "Bearer "+token, &stubRevoker{})
	assertHTTPStatus(t, autherr, http.StatusUnauthorized)
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := runAuth(t, "Bearer "+token, &stubRevoker{})
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_RevokedToken(t *testing.T) {
	revoker := &stubRevoker{revoked: map[string]bool{"jti-gone": true}}
	token := signToken(t, jwt.MapClaims{
		"sub": float64(1),
		"jti": "jti-gone",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := runAuth(t, "Bearer "+token, revoker)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuth_RevocationCheckFailsClosed(t *testing.T) {
	revoker := &stubRevoker{err: errors.New("store unavailable")}
	token := signToken(t, jwt.MapClaims{
		"sub": float64(1),
		"jti": "jti-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := runAuth(t, "Bearer "+token, revoker)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != want {
		t.Fatalf("expected status %d, got %d", want, httpErr.Code)
	}
}
