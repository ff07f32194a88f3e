package ports

import (
	"context"

	"github.com/activos-tic/itam-api/internal/core/domain"
)

// AssetService defines use-case operations over employees and the three
// asset kinds. Writes that carry a non-empty AssignedEmployeeID fail with
// domain.ErrEmployeeNotFound when the reference does not resolve; the asset
// is not created or modified in that case.
type AssetService interface {
	CreateEmployee(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, id string, e *domain.Employee) (*domain.Employee, error)
	// DeleteEmployee clears the employee reference on every hardware,
	// license, and web access row before removing the employee itself, as
	// one atomic unit. Assigned assets survive their owner.
	DeleteEmployee(ctx context.Context, id string) error

	CreateHardware(ctx context.Context, h *domain.Hardware) (*domain.Hardware, error)
	ListHardware(ctx context.Context) ([]*domain.Hardware, error)
	GetHardware(ctx context.Context, id string) (*domain.Hardware, error)
	UpdateHardware(ctx context.Context, id string, h *domain.Hardware) (*domain.Hardware, error)
	DeleteHardware(ctx context.Context, id string) error

	CreateLicense(ctx context.Context, l *domain.License) (*domain.License, error)
	ListLicenses(ctx context.Context) ([]*domain.License, error)
	GetLicense(ctx context.Context, id string) (*domain.License, error)
	UpdateLicense(ctx context.Context, id string, l *domain.License) (*domain.License, error)
	DeleteLicense(ctx context.Context, id string) error

	CreateWebAccess(ctx context.Context, w *domain.WebAccess) (*domain.WebAccess, error)
	ListWebAccesses(ctx context.Context) ([]*domain.WebAccess, error)
	GetWebAccess(ctx context.Context, id string) (*domain.WebAccess, error)
	UpdateWebAccess(ctx context.Context, id string, w *domain.WebAccess) (*domain.WebAccess, error)
	DeleteWebAccess(ctx context.Context, id string) error
}

// ExportService serializes the full inventory into a binary spreadsheet.
type ExportService interface {
	ExportExcel(ctx context.Context) ([]byte, error)
}
