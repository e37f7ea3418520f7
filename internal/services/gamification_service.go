package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skillpath/learning-service/internal/events"
	"github.com/skillpath/learning-service/internal/models"
	"github.com/skillpath/learning-service/internal/store"
	"github.com/skillpath/learning-service/internal/validator"
)

type gamificationService struct {
	kv        *store.KV
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewGamificationService(kv *store.KV, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator) GamificationService {
	return &gamificationService{
		kv:        kv,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

func (s *gamificationService) Get(ctx context.Context, userID string) (*models.Achievements, error) {
	achievements, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

// Unlock adds the achievement id and awards XP, recomputing the level. A
// duplicate id is a no-op that returns the unchanged state. The
// read-merge-write is last-write-wins, same as progress updates.
func (s *gamificationService) Unlock(ctx context.Context, userID string, req *AchievementUpdateRequest) (*models.Achievements, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, verrs.Error())
	}

	achievements, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if achievements.HasUnlocked(req.AchievementID) {
		return achievements, nil
	}

	achievements.Unlocked = append(achievements.Unlocked, req.AchievementID)
	achievements.XP += req.XP
	achievements.Level = models.LevelForXP(achievements.XP)

	if err := s.kv.Set(ctx, store.AchievementsKey(userID), achievements); err != nil {
		return nil, fmt.Errorf("failed to persist achievements: %w", err)
	}

	if err := s.publisher.Publish(ctx, events.NewEvent(events.TypeAchievementUnlocked, map[string]interface{}{
		"userId":        userID,
		"achievementId": req.AchievementID,
		"xp":            achievements.XP,
		"level":         achievements.Level,
	})); err != nil {
		s.logger.Error("failed to publish achievement event", "error", err, "achievement_id", req.AchievementID)
	}

	return achievements, nil
}

func (s *gamificationService) load(ctx context.Context, userID string) (*models.Achievements, error) {
	achievements := &models.Achievements{
		Unlocked: []string{},
		XP:       0,
		Level:    1,
		Streak:   0,
	}
	if err := s.kv.Get(ctx, store.AchievementsKey(userID), achievements); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to load achievements: %w", err)
	}
	return achievements, nil
}
