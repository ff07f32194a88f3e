package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether name is one of the known role variants.
func ValidRole(name string) bool {
	return name == RoleAdmin || name == RoleUser
}

// Account models an authenticated actor in the system.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the account carries the given role.
func (a *Account) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role is immutable reference data, created once at bootstrap if absent.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
