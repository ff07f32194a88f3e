package handler

// Request and response DTOs for the asset endpoints. Field names follow the
// public API contract (camelCase); dates travel as yyyy-mm-dd strings.

type employeeRequest struct {
	Name       string `json:"name" validate:"required"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

type employeeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
}

type hardwareRequest struct {
	Type               string `json:"type"         validate:"required"`
	Brand              string `json:"brand"`
	SerialNumber       string `json:"serialNumber" validate:"required"`
	Location           string `json:"location"`
	AssignedEmployeeID string `json:"assignedEmployeeId"`
}

type hardwareResponse struct {
	ID                   string `json:"id"`
	Type                 string `json:"type"`
	Brand                string `json:"brand,omitempty"`
	SerialNumber         string `json:"serialNumber"`
	Location             string `json:"location,omitempty"`
	AssignedEmployeeID   string `json:"assignedEmployeeId,omitempty"`
	AssignedEmployeeName string `json:"assignedEmployeeName,omitempty"`
}

type licenseRequest struct {
	SoftwareName       string `json:"softwareName"   validate:"required"`
	LicenseKey         string `json:"licenseKey"     validate:"required"`
	PurchaseDate       string `json:"purchaseDate"   validate:"omitempty,datetime=2006-01-02"`
	ExpirationDate     string `json:"expirationDate" validate:"omitempty,datetime=2006-01-02"`
	AssignedEmployeeID string `json:"assignedEmployeeId"`
}

type licenseResponse struct {
	ID                   string `json:"id"`
	SoftwareName         string `json:"softwareName"`
	LicenseKey           string `json:"licenseKey"`
	PurchaseDate         string `json:"purchaseDate,omitempty"`
	ExpirationDate       string `json:"expirationDate,omitempty"`
	AssignedEmployeeID   string `json:"assignedEmployeeId,omitempty"`
	AssignedEmployeeName string `json:"assignedEmployeeName,omitempty"`
}

type webAccessRequest struct {
	URL                string `json:"url"            validate:"required,url"`
	ServiceName        string `json:"serviceName"    validate:"required"`
	AccessUsername     string `json:"accessUsername" validate:"required"`
	AccessPassword     string `json:"accessPassword" validate:"required"`
	AssignedEmployeeID string `json:"assignedEmployeeId"`
}

type webAccessResponse struct {
	ID                   string `json:"id"`
	URL                  string `json:"url"`
	ServiceName          string `json:"serviceName"`
	AccessUsername       string `json:"accessUsername"`
	AccessPassword       string `json:"accessPassword"`
	AssignedEmployeeID   string `json:"assignedEmployeeId,omitempty"`
	AssignedEmployeeName string `json:"assignedEmployeeName,omitempty"`
}
