package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrops/payroll-system/internal/core/domain"
)

// RBAC rejects requests whose principal carries none of the allowed
// authorities. It runs after Auth and before any target id is resolved.
func RBAC(allowedAuthorities ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedAuthorities))
	for _, a := range allowedAuthorities {
		allowed[a] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := c.Get(PrincipalKey).(domain.Principal)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, ok := allowed[p.Authority()]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
