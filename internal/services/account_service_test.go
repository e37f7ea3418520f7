package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/skillpath/learning-service/internal/models"
	"github.com/skillpath/learning-service/internal/repositories"
	"github.com/skillpath/learning-service/internal/validator"
)

// mockUserRegistry is an in-memory UserRegistry keyed by lowercased email.
type mockUserRegistry struct {
	users   map[string]*models.User
	deletes int
	creates int
}

func newMockUserRegistry() *mockUserRegistry {
	return &mockUserRegistry{users: make(map[string]*models.User)}
}

func (m *mockUserRegistry) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := m.users[strings.ToLower(email)]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRegistry) Create(ctx context.Context, email, password, name string) (*models.User, error) {
	m.creates++
	user := &models.User{
		ID:            uuid.New().String(),
		Email:         email,
		Name:          name,
		EmailVerified: true,
	}
	m.users[strings.ToLower(email)] = user
	return user, nil
}

func (m *mockUserRegistry) Delete(ctx context.Context, email string) error {
	key := strings.ToLower(email)
	if _, ok := m.users[key]; !ok {
		return repositories.ErrUserNotFound
	}
	m.deletes++
	delete(m.users, key)
	return nil
}

func (m *mockUserRegistry) UpdatePassword(ctx context.Context, email, newPassword string) error {
	if _, ok := m.users[strings.ToLower(email)]; !ok {
		return repositories.ErrUserNotFound
	}
	return nil
}

func newAccountService(registry repositories.UserRegistry) AccountService {
	return NewAccountService(registry, testLogger(), validator.New())
}

func TestAccountService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new account", func(t *testing.T) {
		registry := newMockUserRegistry()
		svc := newAccountService(registry)

		user, err := svc.Signup(ctx, &SignupRequest{Email: "new@example.com", Password: "secret1", Name: "New User"})
		if err != nil {
			t.Fatalf("signup failed: %v", err)
		}
		if user.Email != "new@example.com" {
			t.Errorf("unexpected email %q", user.Email)
		}
		if user.ID == "" {
			t.Error("expected a user id")
		}
	})

	t.Run("confirmed account is a conflict", func(t *testing.T) {
		registry := newMockUserRegistry()
		registry.users["taken@example.com"] = &models.User{
			ID: "u1", Email: "taken@example.com", EmailVerified: true,
		}
		svc := newAccountService(registry)

		_, err := svc.Signup(ctx, &SignupRequest{Email: "taken@example.com", Password: "secret1", Name: "X"})
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		if registry.creates != 0 {
			t.Errorf("expected no create on conflict, got %d", registry.creates)
		}
	})

	t.Run("unconfirmed leftover is replaced", func(t *testing.T) {
		registry := newMockUserRegistry()
		registry.users["half@example.com"] = &models.User{
			ID: "old", Email: "half@example.com", EmailVerified: false,
		}
		svc := newAccountService(registry)

		user, err := svc.Signup(ctx, &SignupRequest{Email: "half@example.com", Password: "secret1", Name: "Retry"})
		if err != nil {
			t.Fatalf("signup failed: %v", err)
		}
		if registry.deletes != 1 {
			t.Errorf("expected the stale account deleted, deletes=%d", registry.deletes)
		}
		if user.ID == "old" {
			t.Error("expected a fresh account, got the stale one")
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		svc := newAccountService(newMockUserRegistry())

		cases := []struct {
			name string
			req  SignupRequest
		}{
			{"missing email", SignupRequest{Password: "secret1", Name: "X"}},
			{"malformed email", SignupRequest{Email: "not-an-email", Password: "secret1", Name: "X"}},
			{"short password", SignupRequest{Email: "a@b.com", Password: "abc", Name: "X"}},
			{"missing name", SignupRequest{Email: "a@b.com", Password: "secret1"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := svc.Signup(ctx, &tc.req); !errors.Is(err, ErrValidationFailed) {
					t.Errorf("expected ErrValidationFailed, got %v", err)
				}
			})
		}
	})
}

func TestAccountService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email is not found", func(t *testing.T) {
		svc := newAccountService(newMockUserRegistry())

		err := svc.ResetPassword(ctx, &ResetPasswordRequest{Email: "ghost@example.com", NewPassword: "secret2"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("existing account succeeds", func(t *testing.T) {
		registry := newMockUserRegistry()
		registry.users["u@example.com"] = &models.User{ID: "u1", Email: "u@example.com", EmailVerified: true}
		svc := newAccountService(registry)

		if err := svc.ResetPassword(ctx, &ResetPasswordRequest{Email: "u@example.com", NewPassword: "secret2"}); err != nil {
			t.Fatalf("reset failed: %v", err)
		}
	})
}

func TestAccountService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the account", func(t *testing.T) {
		registry := newMockUserRegistry()
		registry.users["gone@example.com"] = &models.User{ID: "u1", Email: "gone@example.com", EmailVerified: true}
		svc := newAccountService(registry)

		if err := svc.DeleteAccount(ctx, &DeleteUserRequest{Email: "gone@example.com"}); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if len(registry.users) != 0 {
			t.Errorf("expected registry empty, got %d users", len(registry.users))
		}
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		svc := newAccountService(newMockUserRegistry())

		err := svc.DeleteAccount(ctx, &DeleteUserRequest{Email: "ghost@example.com"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
