package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/hrops/payroll-system/internal/core/domain"
	"github.com/hrops/payroll-system/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	PrincipalKey = "principal"
	TokenIDKey   = "token_id"
	TokenExpKey  = "token_exp"
)

// Auth validates the bearer token, checks it against the revocation store
// and injects the resulting Principal into the request context. Revocation
// checks fail closed.
func Auth(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			tokenID, _ := claims["jti"].(string)
			if revoker != nil && tokenID != "" {
				revoked, err := revoker.IsRevoked(c.Request().Context(), tokenID)
				if err != nil || revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token no longer valid")
				}
			}

			sub, _ := claims["sub"].(float64)
			username, _ := claims["username"].(string)
			name, _ := claims["name"].(string)
			role, _ := claims["role"].(string)

			c.Set(PrincipalKey, domain.Principal{
				EmployeeID: int64(sub),
				Username:   username,
				Name:       name,
				Role:       role,
			})
			c.Set(TokenIDKey, tokenID)
			if exp, ok := claims["exp"].(float64); ok {
				c.Set(TokenExpKey, time.Unix(int64(exp), 0))
			}

			return next(c)
		}
	}
}
