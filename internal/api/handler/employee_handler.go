package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hrops/payroll-system/internal/api/metrics"
	"github.com/hrops/payroll-system/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee records.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List handles GET /employees.
//
// @Summary      List all employee records
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   employeeResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	employees, err := h.service.List(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toEmployeeListResponse(employees))
}

// Create handles POST /employees.
//
// @Summary      Create an employee record
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), p, toEmployeeInput(req))
	if err != nil {
		return err
	}

	metrics.EmployeeWritesTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, toEmployeeResponse(*created))
}

// Get handles GET /employees/:id.
//
// @Summary      Get one employee record (self or admin)
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  employeeResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	emp, err := h.service.Get(c.Request().Context(), p, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toEmployeeResponse(*emp))
}

// Replace handles PUT /employees/:id with upsert semantics.
//
// @Summary      Replace or create an employee record at id (self or admin)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Employee id"
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      200   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Replace(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	replaced, err := h.service.Replace(c.Request().Context(), p, id, toEmployeeInput(req))
	if err != nil {
		return err
	}

	metrics.EmployeeWritesTotal.WithLabelValues("replaced").Inc()
	return c.JSON(http.StatusOK, toEmployeeResponse(*replaced))
}

// Delete handles DELETE /employees/:id.
//
// @Summary      Delete an employee record
// @Tags         employees
// @Security     BearerAuth
// @Param        id  path  int  true  "Employee id"
// @Success      204  "deleted"
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, id); err != nil {
		return err
	}

	metrics.EmployeeWritesTotal.WithLabelValues("deleted").Inc()
	return c.NoContent(http.StatusNoContent)
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
