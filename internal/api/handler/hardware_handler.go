package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/activos-tic/itam-api/internal/core/ports"
)

// HardwareHandler handles HTTP requests for hardware operations.
type HardwareHandler struct {
	service ports.AssetService
}

func NewHardwareHandler(service ports.AssetService) *HardwareHandler {
	return &HardwareHandler{service: service}
}

// Create handles POST /api/hardware.
//
// @Summary      Create a hardware asset
// @Tags         hardware
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      hardwareRequest  true  "Hardware details"
// @Success      201   {object}  hardwareResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/hardware [post]
func (h *HardwareHandler) Create(c echo.Context) error {
	var req hardwareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateHardware(c.Request().Context(), toHardware(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toHardwareResponse(created))
}

// List handles GET /api/hardware.
func (h *HardwareHandler) List(c echo.Context) error {
	items, err := h.service.ListHardware(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHardwareListResponse(items))
}

// Get handles GET /api/hardware/:id.
func (h *HardwareHandler) Get(c echo.Context) error {
	hw, err := h.service.GetHardware(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHardwareResponse(hw))
}

// Update handles PUT /api/hardware/:id. An empty assignedEmployeeId
// unassigns the asset.
func (h *HardwareHandler) Update(c echo.Context) error {
	var req hardwareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateHardware(c.Request().Context(), c.Param("id"), toHardware(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHardwareResponse(updated))
}

// Delete handles DELETE /api/hardware/:id.
func (h *HardwareHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteHardware(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
