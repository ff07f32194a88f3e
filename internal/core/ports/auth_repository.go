package ports

import (
	"context"

	"github.com/activos-tic/itam-api/internal/core/domain"
)

// AccountRepository defines persistence for user accounts. Uniqueness of
// username and email is enforced at this boundary; violations surface as
// domain.ErrUserExists.
type AccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

// RoleRepository manages the immutable role reference rows.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
}
