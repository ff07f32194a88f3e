package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/activos-tic/itam-api/internal/core/domain"
	"github.com/activos-tic/itam-api/internal/core/ports"
	"github.com/activos-tic/itam-api/internal/pkg/metrics"
)

// LoginThrottle counts failed login attempts per username and blocks
// further attempts once a threshold is reached (Redis-backed in production).
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements login and admin-gated registration.
type AuthService struct {
	accounts ports.AccountRepository
	tokens   *TokenManager
	throttle LoginThrottle
	logger   zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, tokens *TokenManager, throttle LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{accounts: accounts, tokens: tokens, throttle: throttle, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Account, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooManyFailures(ctx, username)
		if err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("throttle check failed, continuing")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		// Only an absent account is a credential failure. Anything else is
		// an infrastructure error and must not look like a bad password or
		// feed the throttle counter.
		if !errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, err
		}
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("failed to reset throttle counter")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", username).Msg("login succeeded")
	return token, account, nil
}

func (s *AuthService) Register(ctx context.Context, username, password, email string, roles []string) (*domain.Account, error) {
	if username == "" || password == "" || email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if len(roles) == 0 {
		roles = []string{domain.RoleUser}
	}
	for _, r := range roles {
		if !domain.ValidRole(r) {
			return nil, domain.ErrInvalidRole
		}
	}

	exists, err := s.accounts.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Strs("roles", roles).Msg("account registered")
	return created, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}
