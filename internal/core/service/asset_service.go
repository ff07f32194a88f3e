package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/activos-tic/itam-api/internal/core/domain"
	"github.com/activos-tic/itam-api/internal/core/ports"
	"github.com/activos-tic/itam-api/internal/pkg/metrics"
)

// AssetService owns the employee/asset graph and its integrity invariant:
// a non-empty assigned employee reference always points at an existing
// employee. Assets never dangle; deleting an employee unassigns them first.
type AssetService struct {
	employees   ports.EmployeeRepository
	hardware    ports.HardwareRepository
	licenses    ports.LicenseRepository
	webAccesses ports.WebAccessRepository
	tx          ports.Transactor
	logger      zerolog.Logger
}

func NewAssetService(
	employees ports.EmployeeRepository,
	hardware ports.HardwareRepository,
	licenses ports.LicenseRepository,
	webAccesses ports.WebAccessRepository,
	tx ports.Transactor,
	logger zerolog.Logger,
) *AssetService {
	return &AssetService{
		employees:   employees,
		hardware:    hardware,
		licenses:    licenses,
		webAccesses: webAccesses,
		tx:          tx,
		logger:      logger,
	}
}

// resolveAssignment validates a weak employee reference on an asset write.
// An empty id means unassigned and resolves to nil. A non-empty id that
// does not exist fails naming the employee, not the asset.
func (s *AssetService) resolveAssignment(ctx context.Context, employeeID string) (*domain.Employee, error) {
	if employeeID == "" {
		return nil, nil
	}
	e, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("%w: id %s (for assignment)", domain.ErrEmployeeNotFound, employeeID)
	}
	return e, nil
}

// employeeNameIndex maps employee id to name for enriching list responses.
func (s *AssetService) employeeNameIndex(ctx context.Context) (map[string]string, error) {
	all, err := s.employees.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]string, len(all))
	for _, e := range all {
		idx[e.ID] = e.Name
	}
	return idx, nil
}

// --- Employees ---

func (s *AssetService) CreateEmployee(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	created, err := s.employees.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	metrics.AssetWritesTotal.WithLabelValues("employee", "create").Inc()
	s.logger.Info().Str("employee_id", created.ID).Str("name", created.Name).Msg("employee created")
	return created, nil
}

func (s *AssetService) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	return s.employees.FindAll(ctx)
}

func (s *AssetService) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employees.FindByID(ctx, id)
}

func (s *AssetService) UpdateEmployee(ctx context.Context, id string, in *domain.Employee) (*domain.Employee, error) {
	e, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Name = in.Name
	e.Department = in.Department
	e.Position = in.Position

	updated, err := s.employees.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	metrics.AssetWritesTotal.WithLabelValues("employee", "update").Inc()
	return updated, nil
}

// DeleteEmployee clears the employee reference on every hardware, license,
// and web access row before removing the employee itself. All writes run
// inside one transaction: a concurrent reader never observes a dangling
// reference or a partial cascade.
func (s *AssetService) DeleteEmployee(ctx context.Context, id string) error {
	var hwCleared, licCleared, waCleared int

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.employees.FindByID(ctx, id); err != nil {
			return err
		}

		hw, err := s.hardware.FindByAssignedEmployee(ctx, id)
		if err != nil {
			return err
		}
		for _, h := range hw {
			h.AssignedEmployeeID = ""
			if _, err := s.hardware.Update(ctx, h); err != nil {
				return err
			}
		}
		hwCleared = len(hw)

		lics, err := s.licenses.FindByAssignedEmployee(ctx, id)
		if err != nil {
			return err
		}
		for _, l := range lics {
			l.AssignedEmployeeID = ""
			if _, err := s.licenses.Update(ctx, l); err != nil {
				return err
			}
		}
		licCleared = len(lics)

		was, err := s.webAccesses.FindByAssignedEmployee(ctx, id)
		if err != nil {
			return err
		}
		for _, w := range was {
			w.AssignedEmployeeID = ""
			if _, err := s.webAccesses.Update(ctx, w); err != nil {
				return err
			}
		}
		waCleared = len(was)

		return s.employees.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	metrics.AssignmentsClearedTotal.WithLabelValues("hardware").Add(float64(hwCleared))
	metrics.AssignmentsClearedTotal.WithLabelValues("license").Add(float64(licCleared))
	metrics.AssignmentsClearedTotal.WithLabelValues("web_access").Add(float64(waCleared))
	metrics.AssetWritesTotal.WithLabelValues("employee", "delete").Inc()

	s.logger.Info().
		Str("employee_id", id).
		Int("hardware_unassigned", hwCleared).
		Int("licenses_unassigned", licCleared).
		Int("web_accesses_unassigned", waCleared).
		Msg("employee deleted, assets unassigned")
	return nil
}

// --- Hardware ---

func (s *AssetService) CreateHardware(ctx context.Context, h *domain.Hardware) (*domain.Hardware, error) {
	owner, err := s.resolveAssignment(ctx, h.AssignedEmployeeID)
	if err != nil {
		return nil, err
	}

	created, err := s.hardware.Create(ctx, h)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		created.AssignedEmployeeName = owner.Name
	}
	metrics.AssetWritesTotal.WithLabelValues("hardware", "create").Inc()
	s.logger.Info().Str("hardware_id", created.ID).Str("serial_number", created.SerialNumber).Msg("hardware created")
	return created, nil
}

func (s *AssetService) ListHardware(ctx context.Context) ([]*domain.Hardware, error) {
	items, err := s.hardware.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.employeeNameIndex(ctx)
	if err != nil {
		return nil, err
	}
	for _, h := range items {
		h.AssignedEmployeeName = names[h.AssignedEmployeeID]
	}
	return items, nil
}

func (s *AssetService) GetHardware(ctx context.Context, id string) (*domain.Hardware, error) {
	h, err := s.hardware.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h.AssignedEmployeeID != "" {
		if e, err := s.employees.FindByID(ctx, h.AssignedEmployeeID); err == nil {
			h.AssignedEmployeeName = e.Name
		}
	}
	return h, nil
}

func (s *AssetService) UpdateHardware(ctx context.Context, id string, in *domain.Hardware) (*domain.Hardware, error) {
	h, err := s.hardware.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	owner, err := s.resolveAssignment(ctx, in.AssignedEmployeeID)
	if err != nil {
		return nil, err
	}

	h.Type = in.Type
	h.Brand = in.Brand
	h.SerialNumber = in.SerialNumber
	h.Location = in.Location
	h.AssignedEmployeeID = in.AssignedEmployeeID

	updated, err := s.hardware.Update(ctx, h)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		updated.AssignedEmployeeName = owner.Name
	}
	metrics.AssetWritesTotal.WithLabelValues("hardware", "update").Inc()
	return updated, nil
}

func (s *AssetService) DeleteHardware(ctx context.Context, id string) error {
	if err := s.hardware.Delete(ctx, id); err != nil {
		return err
	}
	metrics.AssetWritesTotal.WithLabelValues("hardware", "delete").Inc()
	return nil
}

// --- Licenses ---

func (s *AssetService) CreateLicense(ctx context.Context, l *domain.License) (*domain.License, error) {
	owner, err := s.resolveAssignment(ctx, l.AssignedEmployeeID)
	if err != nil {
		return nil, err
	}

	created, err := s.licenses.Create(ctx, l)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		created.AssignedEmployeeName = owner.Name
	}
	metrics.AssetWritesTotal.WithLabelValues("license", "create").Inc()
	s.logger.Info().Str("license_id", created.ID).Str("software", created.SoftwareName).Msg("license created")
	return created, nil
}

func (s *AssetService) ListLicenses(ctx context.Context) ([]*domain.License, error) {
	items, err := s.licenses.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.employeeNameIndex(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range items {
		l.AssignedEmployeeName = names[l.AssignedEmployeeID]
	}
	return items, nil
}

func (s *AssetService) GetLicense(ctx context.Context, id string) (*domain.License, error) {
	l, err := s.licenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.AssignedEmployeeID != "" {
		if e, err := s.employees.FindByID(ctx, l.AssignedEmployeeID); err == nil {
			l.AssignedEmployeeName = e.Name
		}
	}
	return l, nil
}

func (s *AssetService) UpdateLicense(ctx context.Context, id string, in *domain.License) (*domain.License, error) {
	l, err := s.licenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	owner, err := s.resolveAssignment(ctx, in.AssignedEmployeeID)
	if err != nil {
		return nil, err
	}

	l.SoftwareName = in.SoftwareName
	l.LicenseKey = in.LicenseKey
	l.PurchaseDate = in.PurchaseDate
	l.ExpirationDate = in.ExpirationDate
	l.AssignedEmployeeID = in.AssignedEmployeeID

	updated, err := s.licenses.Update(ctx, l)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		updated.AssignedEmployeeName = owner.Name
	}
	metrics.AssetWritesTotal.WithLabelValues("license", "update").Inc()
	return updated, nil
}

func (s *AssetService) DeleteLicense(ctx context.Context, id string) error {
	if err := s.licenses.Delete(ctx, id); err != nil {
		return err
	}
	metrics.AssetWritesTotal.WithLabelValues("license", "delete").Inc()
	return nil
}

// --- Web accesses ---

func (s *AssetService) CreateWebAccess(ctx context.Context, w *domain.WebAccess) (*domain.WebAccess, error) {
	owner, err := s.resolveAssignment(ctx, w.AssignedEmployeeID)
	if err != nil {
		return nil, err
	}

	created, err := s.webAccesses.Create(ctx, w)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		created.AssignedEmployeeName = owner.Name
	}
	metrics.AssetWritesTotal.WithLabelValues("web_access", "create").Inc()
	s.logger.Info().Str("web_access_id", created.ID).Str("service", created.ServiceName).Msg("web access created")
	return created, nil
}

func (s *AssetService) ListWebAccesses(ctx context.Context) ([]*domain.WebAccess, error) {
	items, err := s.webAccesses.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.employeeNameIndex(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range items {
		w.AssignedEmployeeName = names[w.AssignedEmployeeID]
	}
	return items, nil
}

func (s *AssetService) GetWebAccess(ctx context.Context, id string) (*domain.WebAccess, error) {
	w, err := s.webAccesses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.AssignedEmployeeID != "" {
		if e, err := s.employees.FindByID(ctx, w.AssignedEmployeeID); err == nil {
			w.AssignedEmployeeName = e.Name
		}
	}
	return w, nil
}

func (s *AssetService) UpdateWebAccess(ctx context.Context, id string, in *domain.WebAccess) (*domain.WebAccess, error) {
	w, err := s.webAccesses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	owner, err := s.resolveAssignment(ctx, in.AssignedEmployeeID)
	if err != nil {
		return nil, err
	}

	w.URL = in.URL
	w.ServiceName = in.ServiceName
	w.AccessUsername = in.AccessUsername
	w.AccessPassword = in.AccessPassword
	w.AssignedEmployeeID = in.AssignedEmployeeID

	updated, err := s.webAccesses.Update(ctx, w)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		updated.AssignedEmployeeName = owner.Name
	}
	metrics.AssetWritesTotal.WithLabelValues("web_access", "update").Inc()
	return updated, nil
}

func (s *AssetService) DeleteWebAccess(ctx context.Context, id string) error {
	if err := s.webAccesses.Delete(ctx, id); err != nil {
		return err
	}
	metrics.AssetWritesTotal.WithLabelValues("web_access", "delete").Inc()
	return nil
}
