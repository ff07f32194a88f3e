package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/activos-tic/itam-api/internal/core/domain"
)

type stubRoleRepo struct {
	roles map[string]*domain.Role
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: make(map[string]*domain.Role)}
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	role, ok := r.roles[name]
	if !ok {
		return nil, domain.ErrInvalidRole
	}
	clone := *role
	return &clone, nil
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	clone := *role
	clone.ID = "role_" + role.Name
	r.roles[role.Name] = &clone
	out := clone
	return &out, nil
}

var testAdminSeed = AdminSeed{
	Username: "admin",
	Password: "admin123",
	Email:    "admin@example.com",
}

func TestSeedService_Run_CreatesRolesAndAdmin(t *testing.T) {
	accounts := newStubAccountRepo()
	roles := newStubRoleRepo()
	svc := NewSeedService(accounts, roles, zerolog.Nop())

	if err := svc.Run(context.Background(), testAdminSeed); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	for _, name := range []string{domain.RoleUser, domain.RoleAdmin} {
		if _, err := roles.FindByName(context.Background(), name); err != nil {
			t.Fatalf("role %s not seeded: %v", name, err)
		}
	}

	admin, err := accounts.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin account not seeded: %v", err)
	}
	if len(admin.Roles) != 1 || admin.Roles[0] != domain.RoleAdmin {
		t.Fatalf("unexpected admin roles: %v", admin.Roles)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")); err != nil {
		t.Fatalf("admin password hash does not verify: %v", err)
	}
}

func TestSeedService_Run_Idempotent(t *testing.T) {
	accounts := newStubAccountRepo()
	roles := newStubRoleRepo()
	svc := NewSeedService(accounts, roles, zerolog.Nop())

	if err := svc.Run(context.Background(), testAdminSeed); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := svc.Run(context.Background(), testAdminSeed); err != nil {
		t.Fatalf("second run: %v", err)
	}

	if len(roles.roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(roles.roles))
	}
	if len(accounts.accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accounts.accounts))
	}
}

func TestSeedService_Run_NeverOverwritesAdminPassword(t *testing.T) {
	accounts := newStubAccountRepo()
	roles := newStubRoleRepo()
	svc := NewSeedService(accounts, roles, zerolog.Nop())

	if err := svc.Run(context.Background(), testAdminSeed); err != nil {
		t.Fatalf("first run: %v", err)
	}
	before, err := accounts.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("find admin: %v", err)
	}

	rotated := testAdminSeed
	rotated.Password = "a-different-password"
	if err := svc.Run(context.Background(), rotated); err != nil {
		t.Fatalf("second run: %v", err)
	}

	after, err := accounts.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("find admin: %v", err)
	}
	if after.PasswordHash != before.PasswordHash {
		t.Fatalf("admin password must never be overwritten on reseed")
	}
}
