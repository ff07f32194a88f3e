package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/activos-tic/itam-api/internal/core/domain"
	"github.com/activos-tic/itam-api/internal/core/ports"
)

// SeedService ensures baseline reference data exists at process start: the
// two role rows and one administrative account. Run is idempotent — repeated
// runs never duplicate rows or overwrite an existing admin password.
type SeedService struct {
	accounts ports.AccountRepository
	roles    ports.RoleRepository
	logger   zerolog.Logger
}

// AdminSeed carries the bootstrap admin credentials from configuration.
type AdminSeed struct {
	Username string
	Password string
	Email    string
}

func NewSeedService(accounts ports.AccountRepository, roles ports.RoleRepository, logger zerolog.Logger) *SeedService {
	return &SeedService{accounts: accounts, roles: roles, logger: logger}
}

func (s *SeedService) Run(ctx context.Context, admin AdminSeed) error {
	s.logger.Info().Msg("starting data initialization")

	for _, name := range []string{domain.RoleUser, domain.RoleAdmin} {
		if err := s.ensureRole(ctx, name); err != nil {
			return err
		}
	}

	if err := s.ensureAdmin(ctx, admin); err != nil {
		return err
	}

	s.logger.Info().Msg("data initialization finished")
	return nil
}

func (s *SeedService) ensureRole(ctx context.Context, name string) error {
	if _, err := s.roles.FindByName(ctx, name); err == nil {
		s.logger.Debug().Str("role", name).Msg("role already exists")
		return nil
	}
	if _, err := s.roles.Create(ctx, &domain.Role{Name: name}); err != nil {
		return fmt.Errorf("seed role %s: %w", name, err)
	}
	s.logger.Info().Str("role", name).Msg("role created")
	return nil
}

func (s *SeedService) ensureAdmin(ctx context.Context, admin AdminSeed) error {
	exists, err := s.accounts.ExistsByUsername(ctx, admin.Username)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if exists {
		s.logger.Info().Str("username", admin.Username).Msg("admin account already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:     admin.Username,
		Email:        admin.Email,
		PasswordHash: string(hash),
		Roles:        []string{domain.RoleAdmin},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.accounts.Create(ctx, account); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	s.logger.Info().Str("username", admin.Username).Msg("default admin account created")
	return nil
}
