package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/activos-tic/itam-api/internal/core/ports"
)

// WebAccessHandler handles HTTP requests for web-service credential records.
type WebAccessHandler struct {
	service ports.AssetService
}

func NewWebAccessHandler(service ports.AssetService) *WebAccessHandler {
	return &WebAccessHandler{service: service}
}

func (h *WebAccessHandler) Create(c echo.Context) error {
	var req webAccessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateWebAccess(c.Request().Context(), toWebAccess(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toWebAccessResponse(created))
}

func (h *WebAccessHandler) List(c echo.Context) error {
	items, err := h.service.ListWebAccesses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWebAccessListResponse(items))
}

func (h *WebAccessHandler) Get(c echo.Context) error {
	w, err := h.service.GetWebAccess(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWebAccessResponse(w))
}

func (h *WebAccessHandler) Update(c echo.Context) error {
	var req webAccessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateWebAccess(c.Request().Context(), c.Param("id"), toWebAccess(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWebAccessResponse(updated))
}

func (h *WebAccessHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteWebAccess(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
