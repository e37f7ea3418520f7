package casdoor

import (
	"context"
	"fmt"
	"strings"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/google/uuid"

	"github.com/skillpath/learning-service/internal/models"
	"github.com/skillpath/learning-service/internal/repositories"
)

// Config holds the connection settings for the Casdoor identity provider.
type Config struct {
	Endpoint         string
	ClientID         string
	ClientSecret     string
	Certificate      string
	OrganizationName string
	ApplicationName  string
}

// UserRegistry manages accounts through the Casdoor SDK.
type UserRegistry struct {
	client *casdoorsdk.Client
	config Config
}

func NewUserRegistry(config Config) repositories.UserRegistry {
	client := casdoorsdk.NewClient(
		config.Endpoint,
		config.ClientID,
		config.ClientSecret,
		config.Certificate,
		config.OrganizationName,
		config.ApplicationName,
	)

	return &UserRegistry{
		client: client,
		config: config,
	}
}

// FindByEmail walks the full user registry looking for a matching email.
// Casdoor exposes GetUserByEmail, but confirmed/unconfirmed accounts can
// coexist briefly during signup, so the scan keeps the lookup semantics
// identical to the account-lifecycle handlers that follow it.
func (r *UserRegistry) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	casdoorUsers, err := r.client.GetUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users from Casdoor: %w", err)
	}

	for _, cu := range casdoorUsers {
		if strings.EqualFold(cu.Email, email) {
			return r.toModel(cu), nil
		}
	}

	return nil, repositories.ErrUserNotFound
}

// Create provisions a confirmed account in the organization.
func (r *UserRegistry) Create(ctx context.Context, email, password, name string) (*models.User, error) {
	id := uuid.New().String()
	cu := &casdoorsdk.User{
		Owner:             r.config.OrganizationName,
		Name:              r.usernameForEmail(email, id),
		Id:                id,
		DisplayName:       name,
		Email:             email,
		Password:          password,
		EmailVerified:     true,
		SignupApplication: r.config.ApplicationName,
	}

	ok, err := r.client.AddUser(cu)
	if err != nil {
		return nil, fmt.Errorf("failed to create user in Casdoor: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("Casdoor rejected user creation for %s", email)
	}

	return r.toModel(cu), nil
}

// Delete removes the account matching the email.
func (r *UserRegistry) Delete(ctx context.Context, email string) error {
	cu, err := r.findCasdoorUser(ctx, email)
	if err != nil {
		return err
	}

	ok, err := r.client.DeleteUser(cu)
	if err != nil {
		return fmt.Errorf("failed to delete user in Casdoor: %w", err)
	}
	if !ok {
		return fmt.Errorf("Casdoor rejected user deletion for %s", email)
	}

	return nil
}

// UpdatePassword sets a new password on the account matching the email.
func (r *UserRegistry) UpdatePassword(ctx context.Context, email, newPassword string) error {
	cu, err := r.findCasdoorUser(ctx, email)
	if err != nil {
		return err
	}

	cu.Password = newPassword
	ok, err := r.client.UpdateUserForColumns(cu, []string{"password"})
	if err != nil {
		return fmt.Errorf("failed to update password in Casdoor: %w", err)
	}
	if !ok {
		return fmt.Errorf("Casdoor rejected password update for %s", email)
	}

	return nil
}

func (r *UserRegistry) findCasdoorUser(ctx context.Context, email string) (*casdoorsdk.User, error) {
	casdoorUsers, err := r.client.GetUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users from Casdoor: %w", err)
	}

	for _, cu := range casdoorUsers {
		if strings.EqualFold(cu.Email, email) {
			return cu, nil
		}
	}

	return nil, repositories.ErrUserNotFound
}

func (r *UserRegistry) toModel(cu *casdoorsdk.User) *models.User {
	if cu == nil {
		return nil
	}
	return &models.User{
		ID:            cu.Id,
		Email:         cu.Email,
		Name:          cu.DisplayName,
		EmailVerified: cu.EmailVerified,
	}
}

// usernameForEmail derives a unique Casdoor username from the email local
// part; Casdoor usernames must be unique per organization.
func (r *UserRegistry) usernameForEmail(email, id string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s-%s", local, id)
}
