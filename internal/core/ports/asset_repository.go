package ports

import (
	"context"

	"github.com/activos-tic/itam-api/internal/core/domain"
)

// Transactor runs fn as one atomic unit. Writes made inside fn are either
// all visible or none, which the employee delete-cascade relies on.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

type HardwareRepository interface {
	Create(ctx context.Context, h *domain.Hardware) (*domain.Hardware, error)
	FindAll(ctx context.Context) ([]*domain.Hardware, error)
	FindByID(ctx context.Context, id string) (*domain.Hardware, error)
	// FindByAssignedEmployee lists hardware currently referencing the
	// employee; used by the delete-cascade.
	FindByAssignedEmployee(ctx context.Context, employeeID string) ([]*domain.Hardware, error)
	Update(ctx context.Context, h *domain.Hardware) (*domain.Hardware, error)
	Delete(ctx context.Context, id string) error
}

type LicenseRepository interface {
	Create(ctx context.Context, l *domain.License) (*domain.License, error)
	FindAll(ctx context.Context) ([]*domain.License, error)
	FindByID(ctx context.Context, id string) (*domain.License, error)
	FindByAssignedEmployee(ctx context.Context, employeeID string) ([]*domain.License, error)
	Update(ctx context.Context, l *domain.License) (*domain.License, error)
	Delete(ctx context.Context, id string) error
}

type WebAccessRepository interface {
	Create(ctx context.Context, w *domain.WebAccess) (*domain.WebAccess, error)
	FindAll(ctx context.Context) ([]*domain.WebAccess, error)
	FindByID(ctx context.Context, id string) (*domain.WebAccess, error)
	FindByAssignedEmployee(ctx context.Context, employeeID string) ([]*domain.WebAccess, error)
	Update(ctx context.Context, w *domain.WebAccess) (*domain.WebAccess, error)
	Delete(ctx context.Context, id string) error
}
