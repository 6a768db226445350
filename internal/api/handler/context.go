package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrops/payroll-system/internal/api/middleware"
	"github.com/hrops/payroll-system/internal/core/domain"
)

// ctxPrincipal extracts the Principal injected by the Auth middleware and
// fast-fails before any service call: a missing or zero-id principal means
// the middleware did not run, which is always a 401, never a 403.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok || p.EmployeeID == 0 {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return p, nil
}

// ctxToken extracts the token id and expiry set by the Auth middleware.
func ctxToken(c echo.Context) (tokenID string, expiresAt time.Time) {
	tokenID, _ = c.Get(middleware.TokenIDKey).(string)
	expiresAt, _ = c.Get(middleware.TokenExpKey).(time.Time)
	return tokenID, expiresAt
}
