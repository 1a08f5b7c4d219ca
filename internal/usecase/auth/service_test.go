package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gigboard/internal/domain/user"

	"github.com/google/uuid"
)

type fakeAccounts struct {
	users    map[uuid.UUID]user.User
	profiles map[uuid.UUID]string
	roles    map[uuid.UUID]user.Role
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		users:    map[uuid.UUID]user.User{},
		profiles: map[uuid.UUID]string{},
		roles:    map[uuid.UUID]user.Role{},
	}
}

func (f *fakeAccounts) CreateUser(_ context.Context, u user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeAccounts) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeAccounts) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == strings.ToLower(email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeAccounts) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeAccounts) RegisterAccount(_ context.Context, u user.User, fullName string, role user.Role) error {
	f.users[u.ID] = u
	f.profiles[u.ID] = fullName
	f.roles[u.ID] = role
	return nil
}

func TestService_Register_CreatesProfileAndRole(t *testing.T) {
	accounts := newFakeAccounts()
	svc := NewService(accounts)

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Ana@Example.COM ",
		Password: "correct-horse",
		FullName: " Ana   Souza ",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "ana@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatalf("expected password hash stripped")
	}
	if accounts.profiles[u.ID] != "Ana Souza" {
		t.Fatalf("unexpected profile name %q", accounts.profiles[u.ID])
	}
	if accounts.roles[u.ID] != user.RoleFreelancer {
		t.Fatalf("expected default freelancer role, got %q", accounts.roles[u.ID])
	}
}

func TestService_Register_Rejects(t *testing.T) {
	accounts := newFakeAccounts()
	svc := NewService(accounts)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.co", Password: "short", FullName: "A"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.co", Password: "long-enough", FullName: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.co", Password: "long-enough", FullName: "A", Role: user.RoleAdmin}); !errors.Is(err, ErrRoleNotAllowed) {
		t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
	}

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.co", Password: "long-enough", FullName: "A", Role: user.RoleClient}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.Register(ctx, RegisterInput{Email: "A@B.CO", Password: "long-enough", FullName: "B"}); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestService_Login(t *testing.T) {
	svc := NewService(newFakeAccounts())
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "ben@example.com", Password: "long-enough", FullName: "Ben"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := svc.Login(ctx, LoginInput{Email: "BEN@example.com", Password: "long-enough"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Email: "ben@example.com", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "long-enough"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
