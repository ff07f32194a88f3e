package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/activos-tic/itam-api/internal/core/ports"
)

// LicenseHandler handles HTTP requests for software license operations.
type LicenseHandler struct {
	service ports.AssetService
}

func NewLicenseHandler(service ports.AssetService) *LicenseHandler {
	return &LicenseHandler{service: service}
}

func (h *LicenseHandler) Create(c echo.Context) error {
	var req licenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateLicense(c.Request().Context(), toLicense(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toLicenseResponse(created))
}

func (h *LicenseHandler) List(c echo.Context) error {
	items, err := h.service.ListLicenses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLicenseListResponse(items))
}

func (h *LicenseHandler) Get(c echo.Context) error {
	l, err := h.service.GetLicense(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLicenseResponse(l))
}

func (h *LicenseHandler) Update(c echo.Context) error {
	var req licenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateLicense(c.Request().Context(), c.Param("id"), toLicense(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLicenseResponse(updated))
}

func (h *LicenseHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteLicense(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
