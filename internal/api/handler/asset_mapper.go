package handler

import (
	"time"

	"github.com/activos-tic/itam-api/internal/core/domain"
)

const dateLayout = "2006-01-02"

// --- Request → domain ---

func toEmployee(req employeeRequest) *domain.Employee {
	return &domain.Employee{
		Name:       req.Name,
		Department: req.Department,
		Position:   req.Position,
	}
}

func toHardware(req hardwareRequest) *domain.Hardware {
	return &domain.Hardware{
		Type:               req.Type,
		Brand:              req.Brand,
		SerialNumber:       req.SerialNumber,
		Location:           req.Location,
		AssignedEmployeeID: req.AssignedEmployeeID,
	}
}

func toLicense(req licenseRequest) *domain.License {
	return &domain.License{
		SoftwareName:       req.SoftwareName,
		LicenseKey:         req.LicenseKey,
		PurchaseDate:       parseDate(req.PurchaseDate),
		ExpirationDate:     parseDate(req.ExpirationDate),
		AssignedEmployeeID: req.AssignedEmployeeID,
	}
}

func toWebAccess(req webAccessRequest) *domain.WebAccess {
	return &domain.WebAccess{
		URL:                req.URL,
		ServiceName:        req.ServiceName,
		AccessUsername:     req.AccessUsername,
		AccessPassword:     req.AccessPassword,
		AssignedEmployeeID: req.AssignedEmployeeID,
	}
}

// parseDate converts an already-validated yyyy-mm-dd string; empty means unset.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// --- Domain → response ---

func toEmployeeResponse(e *domain.Employee) employeeResponse {
	return employeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Department: e.Department,
		Position:   e.Position,
	}
}

func toEmployeeListResponse(items []*domain.Employee) []employeeResponse {
	out := make([]employeeResponse, len(items))
	for i, e := range items {
		out[i] = toEmployeeResponse(e)
	}
	return out
}

func toHardwareResponse(h *domain.Hardware) hardwareResponse {
	return hardwareResponse{
		ID:                   h.ID,
		Type:                 h.Type,
		Brand:                h.Brand,
		SerialNumber:         h.SerialNumber,
		Location:             h.Location,
		AssignedEmployeeID:   h.AssignedEmployeeID,
		AssignedEmployeeName: h.AssignedEmployeeName,
	}
}

func toHardwareListResponse(items []*domain.Hardware) []hardwareResponse {
	out := make([]hardwareResponse, len(items))
	for i, h := range items {
		out[i] = toHardwareResponse(h)
	}
	return out
}

func toLicenseResponse(l *domain.License) licenseResponse {
	return licenseResponse{
		ID:                   l.ID,
		SoftwareName:         l.SoftwareName,
		LicenseKey:           l.LicenseKey,
		PurchaseDate:         formatDate(l.PurchaseDate),
		ExpirationDate:       formatDate(l.ExpirationDate),
		AssignedEmployeeID:   l.AssignedEmployeeID,
		AssignedEmployeeName: l.AssignedEmployeeName,
	}
}

func toLicenseListResponse(items []*domain.License) []licenseResponse {
	out := make([]licenseResponse, len(items))
	for i, l := range items {
		out[i] = toLicenseResponse(l)
	}
	return out
}

func toWebAccessResponse(w *domain.WebAccess) webAccessResponse {
	return webAccessResponse{
		ID:                   w.ID,
		URL:                  w.URL,
		ServiceName:          w.ServiceName,
		AccessUsername:       w.AccessUsername,
		AccessPassword:       w.AccessPassword,
		AssignedEmployeeID:   w.AssignedEmployeeID,
		AssignedEmployeeName: w.AssignedEmployeeName,
	}
}

func toWebAccessListResponse(items []*domain.WebAccess) []webAccessResponse {
	out := make([]webAccessResponse, len(items))
	for i, w := range items {
		out[i] = toWebAccessResponse(w)
	}
	return out
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
