package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skillpath/learning-service/internal/models"
	"github.com/skillpath/learning-service/internal/repositories"
	"github.com/skillpath/learning-service/internal/validator"
)

type accountService struct {
	registry  repositories.UserRegistry
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAccountService(registry repositories.UserRegistry, logger *slog.Logger, v *validator.Validator) AccountService {
	return &accountService{
		registry:  registry,
		logger:    logger,
		validator: v,
	}
}

// Signup creates a confirmed account. A confirmed account with the same
// email is a conflict ("use sign-in instead"); an unconfirmed leftover is
// deleted and recreated.
func (s *accountService) Signup(ctx context.Context, req *SignupRequest) (*models.User, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, verrs.Error())
	}

	existing, err := s.registry.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if existing != nil {
		if existing.EmailVerified {
			return nil, fmt.Errorf("%w: an account with this email already exists, use sign-in instead", ErrConflict)
		}
		// Unconfirmed leftover from an abandoned signup; replace it.
		if err := s.registry.Delete(ctx, req.Email); err != nil {
			return nil, fmt.Errorf("failed to remove unconfirmed account: %w", err)
		}
		s.logger.Info("replaced unconfirmed account", "email", req.Email)
	}

	user, err := s.registry.Create(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account created", "user_id", user.ID)
	return user, nil
}

func (s *accountService) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if verrs := s.validator.Validate(req); verrs != nil {
		return fmt.Errorf("%w: %s", ErrValidationFailed, verrs.Error())
	}

	if _, err := s.registry.FindByEmail(ctx, req.Email); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return fmt.Errorf("%w: no account with this email", ErrNotFound)
		}
		return fmt.Errorf("failed to look up account: %w", err)
	}

	if err := s.registry.UpdatePassword(ctx, req.Email, req.NewPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("password reset", "email", req.Email)
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, req *DeleteUserRequest) error {
	if verrs := s.validator.Validate(req); verrs != nil {
		return fmt.Errorf("%w: %s", ErrValidationFailed, verrs.Error())
	}

	if err := s.registry.Delete(ctx, req.Email); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return fmt.Errorf("%w: no account with this email", ErrNotFound)
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.logger.Info("account deleted", "email", req.Email)
	return nil
}
