package domain

import "errors"

// Authentication and account errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

// Token verification errors. Verification checks signature first, then
// expiry, then claim shape; each failure mode is reported distinctly.
var (
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenMalformed        = errors.New("token malformed")
)

// Entity resolution errors. NotFound errors are wrapped with the offending
// id at the call site (fmt.Errorf("%w: id %s", ...)).
var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrHardwareNotFound  = errors.New("hardware not found")
	ErrLicenseNotFound   = errors.New("license not found")
	ErrWebAccessNotFound = errors.New("web access not found")
)

// Uniqueness violations surfaced by the persistence layer.
var (
	ErrDuplicateSerialNumber = errors.New("serial number already registered")
	ErrDuplicateLicenseKey   = errors.New("license key already registered")
)
