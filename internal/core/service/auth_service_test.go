package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/activos-tic/itam-api/internal/core/domain"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account
	nextID   int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	clone.Roles = append([]string(nil), a.Roles...)
	return &clone
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	a, ok := r.accounts[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.accounts[username]
	return ok, nil
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	if _, exists := r.accounts[a.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneAccount(a)
	r.nextID++
	copy.ID = "user_" + copy.Username
	r.accounts[copy.Username] = cloneAccount(copy)
	return copy, nil
}

type stubThrottle struct {
	blocked  bool
	failures map[string]int
	resets   int
}

func newStubThrottle() *stubThrottle {
	return &stubThrottle{failures: make(map[string]int)}
}

func (t *stubThrottle) TooManyFailures(_ context.Context, _ string) (bool, error) {
	return t.blocked, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, username string) error {
	t.failures[username]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, username string) error {
	t.resets++
	delete(t.failures, username)
	return nil
}

func newTestAuthService(repo *stubAccountRepo, throttle LoginThrottle) *AuthService {
	tokens := NewTokenManager("secret", time.Hour)
	return NewAuthService(repo, tokens, throttle, zerolog.Nop())
}

func seedAccount(t *testing.T, repo *stubAccountRepo, username, password string, roles ...string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if _, err := repo.Create(context.Background(), &domain.Account{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Roles:        roles,
	}); err != nil {
		t.Fatalf("seed account: %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	throttle := newStubThrottle()
	svc := newTestAuthService(repo, throttle)
	seedAccount(t, repo, "alice", "secret123", domain.RoleUser)

	token, account, err := svc.Login(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}
	if account.Username != "alice" {
		t.Fatalf("unexpected account: %+v", account)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset after success, got %d", throttle.resets)
	}

	claims, err := NewTokenManager("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("unexpected token username: %s", claims.Username)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAccountRepo()
	throttle := newStubThrottle()
	svc := newTestAuthService(repo, throttle)
	seedAccount(t, repo, "alice", "secret123", domain.RoleUser)

	if _, _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures["alice"] != 1 {
		t.Fatalf("expected one recorded failure, got %d", throttle.failures["alice"])
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo(), newStubThrottle())

	if _, _, err := svc.Login(context.Background(), "ghost", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// failingAccountRepo simulates an account store whose backend is down.
type failingAccountRepo struct {
	err error
}

func (r *failingAccountRepo) FindByUsername(context.Context, string) (*domain.Account, error) {
	return nil, r.err
}

func (r *failingAccountRepo) ExistsByUsername(context.Context, string) (bool, error) {
	return false, r.err
}

func (r *failingAccountRepo) Create(context.Context, *domain.Account) (*domain.Account, error) {
	return nil, r.err
}

func TestAuthService_Login_StoreFailureIsNotACredentialError(t *testing.T) {
	storeErr := errors.New("find account: connection refused")
	throttle := newStubThrottle()
	tokens := NewTokenManager("secret", time.Hour)
	svc := NewAuthService(&failingAccountRepo{err: storeErr}, tokens, throttle, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "alice", "secret123")
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("store failure must not be reported as bad credentials")
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate unchanged, got %v", err)
	}
	if throttle.failures["alice"] != 0 {
		t.Fatalf("store failure must not feed the throttle counter, got %d", throttle.failures["alice"])
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubAccountRepo()
	throttle := newStubThrottle()
	throttle.blocked = true
	svc := newTestAuthService(repo, throttle)
	seedAccount(t, repo, "alice", "secret123", domain.RoleUser)

	if _, _, err := svc.Login(context.Background(), "alice", "secret123"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo(), nil)

	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo, nil)

	account, err := svc.Register(context.Background(), "bob", "secret123", "bob@example.com", []string{domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if account.PasswordHash == "secret123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(account.Roles) != 1 || account.Roles[0] != domain.RoleAdmin {
		t.Fatalf("unexpected roles: %v", account.Roles)
	}
}

func TestAuthService_Register_DefaultsToUserRole(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo(), nil)

	account, err := svc.Register(context.Background(), "bob", "secret123", "bob@example.com", nil)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if len(account.Roles) != 1 || account.Roles[0] != domain.RoleUser {
		t.Fatalf("expected default user role, got %v", account.Roles)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo(), nil)

	if _, err := svc.Register(context.Background(), "bob", "secret123", "bob@example.com", []string{"superuser"}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo, nil)
	seedAccount(t, repo, "bob", "secret123", domain.RoleUser)

	if _, err := svc.Register(context.Background(), "bob", "other456", "bob@example.com", nil); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}
