package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/skillpath/learning-service/internal/models"
	"github.com/skillpath/learning-service/internal/store"
	"github.com/skillpath/learning-service/internal/validator"
)

type profileService struct {
	kv        *store.KV
	logger    *slog.Logger
	validator *validator.Validator
}

func NewProfileService(kv *store.KV, logger *slog.Logger, v *validator.Validator) ProfileService {
	return &profileService{
		kv:        kv,
		logger:    logger,
		validator: v,
	}
}

// Save overwrites the profile record wholesale. Both timestamps are stamped
// fresh on every write, so a resubmission loses the original createdAt.
func (s *profileService) Save(ctx context.Context, identity *models.User, req *ProfileCreateRequest) (*models.Profile, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, verrs.Error())
	}

	now := time.Now().UTC()
	skills := req.KnownSkills
	if skills == nil {
		skills = []string{}
	}

	profile := &models.Profile{
		UserID:             identity.ID,
		Email:              identity.Email,
		Name:               identity.Name,
		Background:         req.Background,
		CurrentRole:        req.CurrentRole,
		YearsOfExperience:  req.YearsOfExperience,
		KnownSkills:        skills,
		TargetGoal:         req.TargetGoal,
		PreferredLanguage:  req.PreferredLanguage,
		LearningPace:       req.LearningPace,
		HoursPerWeek:       req.HoursPerWeek,
		LearningStyle:      req.LearningStyle,
		OnboardingComplete: req.OnboardingComplete,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.kv.Set(ctx, store.ProfileKey(identity.ID), profile); err != nil {
		return nil, fmt.Errorf("failed to persist profile: %w", err)
	}

	return profile, nil
}

// Get returns the stored profile, or a minimal stub when the user has not
// onboarded yet. Never a not-found error.
func (s *profileService) Get(ctx context.Context, identity *models.User) (*models.Profile, error) {
	var profile models.Profile
	err := s.kv.Get(ctx, store.ProfileKey(identity.ID), &profile)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &models.Profile{
				UserID:             identity.ID,
				Email:              identity.Email,
				Name:               identity.Name,
				KnownSkills:        []string{},
				OnboardingComplete: false,
			}, nil
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &profile, nil
}
