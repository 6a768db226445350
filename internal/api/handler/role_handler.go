package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrops/payroll-system/internal/core/ports"
)

// RoleHandler handles HTTP requests for roles.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// List handles GET /roles.
//
// @Summary      List all roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  roleResponse
// @Router       /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoleListResponse(roles))
}

// Create handles POST /roles.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roleRequest  true  "Role details"
// @Success      201   {object}  roleResponse
// @Failure      400   {object}  errorResponse
// @Router       /roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.RoleInput{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRoleResponse(*created))
}

// Get handles GET /roles/:id.
//
// @Summary      Get one role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Role id"
// @Success      200  {object}  roleResponse
// @Failure      404  {object}  errorResponse
// @Router       /roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	role, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoleResponse(*role))
}

// Replace handles PUT /roles/:id with upsert semantics.
//
// @Summary      Replace or create a role at id
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Role id"
// @Param        body  body      roleRequest  true  "Role details"
// @Success      200   {object}  roleResponse
// @Failure      400   {object}  errorResponse
// @Router       /roles/{id} [put]
func (h *RoleHandler) Replace(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	replaced, err := h.service.Replace(c.Request().Context(), id, ports.RoleInput{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoleResponse(*replaced))
}

// Delete handles DELETE /roles/:id. Employees referencing the role keep a
// dangling reference that reads back as an empty role.
//
// @Summary      Delete a role
// @Tags         roles
// @Security     BearerAuth
// @Param        id  path  int  true  "Role id"
// @Success      204  "deleted"
// @Failure      404  {object}  errorResponse
// @Router       /roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
