package domain

import "time"

// Employee is the owner side of the asset assignment relationship. It holds
// no collection of assets; each asset keeps a weak reference back to its
// employee by id.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
}

// Hardware is a physical asset. SerialNumber is globally unique.
type Hardware struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Brand        string `json:"brand,omitempty"`
	SerialNumber string `json:"serial_number"`
	Location     string `json:"location,omitempty"`

	// AssignedEmployeeID is a weak reference: empty means unassigned. When
	// non-empty it must point to an existing employee.
	AssignedEmployeeID   string `json:"assigned_employee_id,omitempty"`
	AssignedEmployeeName string `json:"assigned_employee_name,omitempty" bson:"-"`
}

// License is a software license. LicenseKey is globally unique.
type License struct {
	ID             string     `json:"id"`
	SoftwareName   string     `json:"software_name"`
	LicenseKey     string     `json:"license_key"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`

	AssignedEmployeeID   string `json:"assigned_employee_id,omitempty"`
	AssignedEmployeeName string `json:"assigned_employee_name,omitempty" bson:"-"`
}

// WebAccess is a stored credential for an external web service. The password
// is persisted as given; there is no additional encryption layer at the
// application level.
type WebAccess struct {
	ID             string `json:"id"`
	URL            string `json:"url"`
	ServiceName    string `json:"service_name"`
	AccessUsername string `json:"access_username"`
	AccessPassword string `json:"access_password"`

	AssignedEmployeeID   string `json:"assigned_employee_id,omitempty"`
	AssignedEmployeeName string `json:"assigned_employee_name,omitempty" bson:"-"`
}
