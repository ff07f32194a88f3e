package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/activos-tic/itam-api/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	service ports.AssetService
}

func NewEmployeeHandler(service ports.AssetService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Create handles POST /api/employees.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateEmployee(c.Request().Context(), toEmployee(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toEmployeeResponse(created))
}

// List handles GET /api/employees.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  employeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	items, err := h.service.ListEmployees(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeListResponse(items))
}

// Get handles GET /api/employees/:id.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  employeeResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	e, err := h.service.GetEmployee(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(e))
}

// Update handles PUT /api/employees/:id.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Employee id"
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      200   {object}  employeeResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateEmployee(c.Request().Context(), c.Param("id"), toEmployee(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(updated))
}

// Delete handles DELETE /api/employees/:id. Assets assigned to the employee
// are unassigned, not deleted.
//
// @Summary      Delete an employee
// @Tags         employees
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteEmployee(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
