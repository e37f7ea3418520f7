package repositories

import (
	"context"
	"errors"

	"github.com/skillpath/learning-service/internal/models"
)

// ErrUserNotFound is returned when no account matches an email lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRegistry is the account-management surface of the identity provider.
// Lookups are by email over the full registry, which is O(total users) per
// call; acceptable at current scale.
type UserRegistry interface {
	// FindByEmail scans the registry for an account with the given email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Create provisions a confirmed account and returns its identity.
	Create(ctx context.Context, email, password, name string) (*models.User, error)

	// Delete removes the account with the given email.
	Delete(ctx context.Context, email string) error

	// UpdatePassword sets a new password on the account with the given email.
	UpdatePassword(ctx context.Context, email, newPassword string) error
}
