package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/activos-tic/itam-api/internal/core/domain"
	"github.com/activos-tic/itam-api/internal/core/ports"
	"github.com/activos-tic/itam-api/internal/pkg/metrics"
)

const exportDateFormat = "2006-01-02"

// ExportService serializes the full inventory into an xlsx workbook: one
// sheet per entity kind, bold header row. The web access password column is
// deliberately left out of the export.
type ExportService struct {
	employees   ports.EmployeeRepository
	hardware    ports.HardwareRepository
	licenses    ports.LicenseRepository
	webAccesses ports.WebAccessRepository
	logger      zerolog.Logger
}

func NewExportService(
	employees ports.EmployeeRepository,
	hardware ports.HardwareRepository,
	licenses ports.LicenseRepository,
	webAccesses ports.WebAccessRepository,
	logger zerolog.Logger,
) *ExportService {
	return &ExportService{
		employees:   employees,
		hardware:    hardware,
		licenses:    licenses,
		webAccesses: webAccesses,
		logger:      logger,
	}
}

func (s *ExportService) ExportExcel(ctx context.Context) ([]byte, error) {
	start := time.Now()

	employees, err := s.employees.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: list employees: %w", err)
	}
	hardware, err := s.hardware.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: list hardware: %w", err)
	}
	licenses, err := s.licenses.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: list licenses: %w", err)
	}
	webAccesses, err := s.webAccesses.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: list web accesses: %w", err)
	}

	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", "Employees"); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}
	if err := writeSheet(f, "Employees", []string{"ID", "Name", "Department", "Position"}, employeeRows(employees)); err != nil {
		return nil, err
	}

	for _, sheet := range []string{"Hardware", "Licenses", "Web Accesses"} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("export: create sheet %s: %w", sheet, err)
		}
	}
	if err := writeSheet(f, "Hardware",
		[]string{"ID", "Type", "Brand", "Serial Number", "Location", "Assigned Employee ID", "Assigned Employee Name"},
		hardwareRows(hardware, names)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "Licenses",
		[]string{"ID", "Software Name", "License Key", "Purchase Date", "Expiration Date", "Assigned Employee ID", "Assigned Employee Name"},
		licenseRows(licenses, names)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "Web Accesses",
		[]string{"ID", "Service Name", "URL", "Username", "Assigned Employee ID", "Assigned Employee Name"},
		webAccessRows(webAccesses, names)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}

	metrics.ExportDuration.Observe(time.Since(start).Seconds())
	s.logger.Info().
		Int("employees", len(employees)).
		Int("hardware", len(hardware)).
		Int("licenses", len(licenses)).
		Int("web_accesses", len(webAccesses)).
		Msg("inventory exported to excel")
	return buf.Bytes(), nil
}

// writeSheet fills one sheet: bold headers on row 1, data from row 2, fixed
// column widths for readability.
func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export: header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, style); err != nil {
		return err
	}

	for i, row := range rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 24)
}

func employeeRows(employees []*domain.Employee) [][]interface{} {
	rows := make([][]interface{}, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []interface{}{e.ID, e.Name, e.Department, e.Position})
	}
	return rows
}

func hardwareRows(hardware []*domain.Hardware, names map[string]string) [][]interface{} {
	rows := make([][]interface{}, 0, len(hardware))
	for _, h := range hardware {
		rows = append(rows, []interface{}{
			h.ID, h.Type, h.Brand, h.SerialNumber, h.Location,
			h.AssignedEmployeeID, names[h.AssignedEmployeeID],
		})
	}
	return rows
}

func licenseRows(licenses []*domain.License, names map[string]string) [][]interface{} {
	rows := make([][]interface{}, 0, len(licenses))
	for _, l := range licenses {
		rows = append(rows, []interface{}{
			l.ID, l.SoftwareName, l.LicenseKey,
			formatDate(l.PurchaseDate), formatDate(l.ExpirationDate),
			l.AssignedEmployeeID, names[l.AssignedEmployeeID],
		})
	}
	return rows
}

func webAccessRows(webAccesses []*domain.WebAccess, names map[string]string) [][]interface{} {
	rows := make([][]interface{}, 0, len(webAccesses))
	for _, w := range webAccesses {
		rows = append(rows, []interface{}{
			w.ID, w.ServiceName, w.URL, w.AccessUsername,
			w.AssignedEmployeeID, names[w.AssignedEmployeeID],
		})
	}
	return rows
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(exportDateFormat)
}
