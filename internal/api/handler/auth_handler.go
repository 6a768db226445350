package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrops/payroll-system/internal/api/metrics"
	"github.com/hrops/payroll-system/internal/core/domain"
	"github.com/hrops/payroll-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token    string           `json:"token,omitempty"`
	Employee employeeResponse `json:"employee"`
}

type principalResponse struct {
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Authorities []string `json:"authorities"`
}

// Register creates a new employee account.
//
// @Summary      Register a new employee account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	emp, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		RoleName: req.Role,
	})
	if err != nil {
		status, result := http.StatusInternalServerError, "error"
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			status, result = http.StatusConflict, "invalid"
		case errors.Is(err, domain.ErrEmptyUsername),
			errors.Is(err, domain.ErrEmptyPassword),
			errors.Is(err, domain.ErrRoleNotFound):
			status, result = http.StatusBadRequest, "invalid"
		}
		metrics.RegistrationsTotal.WithLabelValues(result).Inc()
		return c.JSON(status, errorResponse{Error: err.Error()})
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, authResponse{Employee: toEmployeeResponse(*emp)})
}

// Login authenticates an employee and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, emp, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, Employee: toEmployeeResponse(*emp)})
}

// Logout revokes the presented token for the remainder of its lifetime.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204  "token revoked"
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return err
	}

	tokenID, expiresAt := ctxToken(c)
	if err := h.authService.Logout(c.Request().Context(), tokenID, time.Until(expiresAt)); err != nil {
		return err
	}

	metrics.TokensRevokedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// CurrentUser returns a summary of the authenticated principal.
//
// @Summary      Current authenticated principal
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  principalResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/current-user [get]
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPrincipalResponse(p))
}

func toPrincipalResponse(p domain.Principal) principalResponse {
	authorities := []string{}
	if a := p.Authority(); a != "" {
		authorities = append(authorities, a)
	}
	return principalResponse{
		Username:    p.Username,
		Name:        p.Name,
		Role:        p.Role,
		Authorities: authorities,
	}
}
