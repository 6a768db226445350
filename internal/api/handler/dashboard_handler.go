package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrops/payroll-system/internal/core/ports"
)

// DashboardHandler serves the profile views of the authenticated principal.
type DashboardHandler struct {
	employeeService ports.EmployeeService
}

func NewDashboardHandler(employeeService ports.EmployeeService) *DashboardHandler {
	return &DashboardHandler{employeeService: employeeService}
}

type completeProfileResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	RoleID   int64  `json:"role_id"`
	RoleName string `json:"role_name"`
}

// UserInfo returns the principal fields carried by the token.
//
// @Summary      Current user's info
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  principalResponse
// @Failure      401  {object}  errorResponse
// @Router       /dashboard/user-info [get]
func (h *DashboardHandler) UserInfo(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPrincipalResponse(p))
}

// CompleteProfile returns the principal's full stored record, re-read from
// the store so role changes since login are reflected.
//
// @Summary      Complete profile of the current user
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  completeProfileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /dashboard/complete-profile [get]
func (h *DashboardHandler) CompleteProfile(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	emp, err := h.employeeService.Get(c.Request().Context(), p, p.EmployeeID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, completeProfileResponse{
		ID:       emp.ID,
		Username: emp.Username,
		Name:     emp.Name,
		RoleID:   emp.Role.ID,
		RoleName: emp.Role.Name,
	})
}
