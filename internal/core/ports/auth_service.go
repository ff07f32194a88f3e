package ports

import (
	"context"

	"github.com/activos-tic/itam-api/internal/core/domain"
)

type AuthService interface {
	// Login verifies credentials and returns a signed bearer token together
	// with the authenticated account.
	Login(ctx context.Context, username, password string) (string, *domain.Account, error)
	// Register creates a new account. An empty role list defaults to the
	// user role.
	Register(ctx context.Context, username, password, email string, roles []string) (*domain.Account, error)
}
