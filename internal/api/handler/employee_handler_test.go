package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/activos-tic/itam-api/internal/core/domain"
	"github.com/activos-tic/itam-api/internal/core/ports"
)

// stubAssetService embeds the interface so each test only overrides the
// methods it exercises.
type stubAssetService struct {
	ports.AssetService
	createEmployeeFn func(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	getEmployeeFn    func(ctx context.Context, id string) (*domain.Employee, error)
	deleteEmployeeFn func(ctx context.Context, id string) error
	createHardwareFn func(ctx context.Context, h *domain.Hardware) (*domain.Hardware, error)
}

func (s *stubAssetService) CreateEmployee(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	return s.createEmployeeFn(ctx, e)
}

func (s *stubAssetService) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	return s.getEmployeeFn(ctx, id)
}

func (s *stubAssetService) DeleteEmployee(ctx context.Context, id string) error {
	return s.deleteEmployeeFn(ctx, id)
}

func (s *stubAssetService) CreateHardware(ctx context.Context, h *domain.Hardware) (*domain.Hardware, error) {
	return s.createHardwareFn(ctx, h)
}

func TestEmployeeHandler_Create_Success(t *testing.T) {
	stub := &stubAssetService{
		createEmployeeFn: func(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
			created := *e
			created.ID = "emp_1"
			return &created, nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/employees",
		`{"name":"Ana","department":"IT","position":"Engineer"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "emp_1" || resp["name"] != "Ana" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestEmployeeHandler_Create_MissingName(t *testing.T) {
	h := NewEmployeeHandler(&stubAssetService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/employees", `{"department":"IT"}`)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestEmployeeHandler_Get_NotFoundPassesThrough(t *testing.T) {
	stub := &stubAssetService{
		getEmployeeFn: func(_ context.Context, id string) (*domain.Employee, error) {
			return nil, fmt.Errorf("%w: id %s", domain.ErrEmployeeNotFound, id)
		},
	}
	h := NewEmployeeHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("emp_404")

	if err := h.Get(c); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound to pass through, got %v", err)
	}
}

func TestEmployeeHandler_Delete_NoContent(t *testing.T) {
	stub := &stubAssetService{
		deleteEmployeeFn: func(_ context.Context, id string) error {
			if id != "emp_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	h := NewEmployeeHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("emp_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestHardwareHandler_Create_ValidatesSerialNumber(t *testing.T) {
	h := NewHardwareHandler(&stubAssetService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/hardware", `{"type":"Laptop"}`)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing serial number, got %v", err)
	}
	if !strings.Contains(fmt.Sprintf("%v", he.Message), "serialNumber") {
		t.Fatalf("validation message should name the field, got %v", he.Message)
	}
}

func TestHardwareHandler_Create_ResponseIncludesAssignment(t *testing.T) {
	stub := &stubAssetService{
		createHardwareFn: func(_ context.Context, hw *domain.Hardware) (*domain.Hardware, error) {
			created := *hw
			created.ID = "hw_1"
			created.AssignedEmployeeName = "Ana"
			return &created, nil
		},
	}
	h := NewHardwareHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/hardware",
		`{"type":"Laptop","brand":"Lenovo","serialNumber":"SN1","assignedEmployeeId":"emp_1"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["assignedEmployeeId"] != "emp_1" || resp["assignedEmployeeName"] != "Ana" {
		t.Fatalf("unexpected assignment fields: %v", resp)
	}
}
