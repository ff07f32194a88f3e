package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/activos-tic/itam-api/internal/core/ports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles the inventory export endpoint.
type ExportHandler struct {
	service ports.ExportService
}

func NewExportHandler(service ports.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Excel handles GET /api/export/excel. The workbook contains one sheet per
// asset kind; web access passwords are never included.
//
// @Summary      Export the full inventory as an Excel workbook
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Failure      403  {object}  map[string]string
// @Router       /api/export/excel [get]
func (h *ExportHandler) Excel(c echo.Context) error {
	data, err := h.service.ExportExcel(c.Request().Context())
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}
