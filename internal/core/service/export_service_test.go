package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/activos-tic/itam-api/internal/core/domain"
)

func newExportFixture(t *testing.T) (*ExportService, *assetFixture) {
	t.Helper()
	f := newAssetFixture()
	svc := NewExportService(f.employees, f.hardware, f.licenses, f.webAccesses, zerolog.Nop())
	return svc, f
}

func TestExportService_SheetLayout(t *testing.T) {
	svc, f := newExportFixture(t)
	ana := f.addEmployee(t, "Ana")

	purchase := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if _, err := f.svc.CreateHardware(context.Background(), &domain.Hardware{Type: "Laptop", Brand: "Lenovo", SerialNumber: "SN1", AssignedEmployeeID: ana.ID}); err != nil {
		t.Fatalf("create hardware: %v", err)
	}
	if _, err := f.svc.CreateLicense(context.Background(), &domain.License{SoftwareName: "IDE", LicenseKey: "KEY-1", PurchaseDate: &purchase}); err != nil {
		t.Fatalf("create license: %v", err)
	}
	if _, err := f.svc.CreateWebAccess(context.Background(), &domain.WebAccess{ServiceName: "CRM", URL: "https://crm.example.com", AccessUsername: "ana", AccessPassword: "hunter2"}); err != nil {
		t.Fatalf("create web access: %v", err)
	}

	data, err := svc.ExportExcel(context.Background())
	if err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported bytes are not a valid workbook: %v", err)
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	want := []string{"Employees", "Hardware", "Licenses", "Web Accesses"}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i, name := range want {
		if sheets[i] != name {
			t.Fatalf("expected sheet %d to be %q, got %q", i, name, sheets[i])
		}
	}

	rows, err := wb.GetRows("Hardware")
	if err != nil {
		t.Fatalf("read hardware sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one hardware row, got %d", len(rows))
	}
	if rows[0][3] != "Serial Number" {
		t.Fatalf("unexpected hardware headers: %v", rows[0])
	}
	if rows[1][3] != "SN1" || rows[1][6] != "Ana" {
		t.Fatalf("unexpected hardware row: %v", rows[1])
	}

	licRows, err := wb.GetRows("Licenses")
	if err != nil {
		t.Fatalf("read licenses sheet: %v", err)
	}
	if licRows[1][3] != "2024-03-15" {
		t.Fatalf("expected formatted purchase date, got %v", licRows[1])
	}
}

func TestExportService_OmitsWebAccessPasswords(t *testing.T) {
	svc, f := newExportFixture(t)

	if _, err := f.svc.CreateWebAccess(context.Background(), &domain.WebAccess{
		ServiceName:    "CRM",
		URL:            "https://crm.example.com",
		AccessUsername: "ana",
		AccessPassword: "super-secret-password",
	}); err != nil {
		t.Fatalf("create web access: %v", err)
	}

	data, err := svc.ExportExcel(context.Background())
	if err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Web Accesses")
	if err != nil {
		t.Fatalf("read web accesses sheet: %v", err)
	}
	for _, row := range rows {
		for _, cell := range row {
			if cell == "super-secret-password" {
				t.Fatalf("password leaked into export")
			}
			if cell == "Password" {
				t.Fatalf("export must not have a password column")
			}
		}
	}
	if rows[1][3] != "ana" {
		t.Fatalf("expected access username in export, got %v", rows[1])
	}
}

func TestExportService_EmptyInventory(t *testing.T) {
	svc, _ := newExportFixture(t)

	data, err := svc.ExportExcel(context.Background())
	if err != nil {
		t.Fatalf("ExportExcel returned error: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Employees")
	if err != nil {
		t.Fatalf("read employees sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header row only, got %d rows", len(rows))
	}
}
