package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/skillpath/learning-service/internal/ai"
	"github.com/skillpath/learning-service/internal/events"
	"github.com/skillpath/learning-service/internal/models"
	"github.com/skillpath/learning-service/internal/store"
)

type roadmapService struct {
	kv        *store.KV
	provider  ai.CompletionProvider
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewRoadmapService(kv *store.KV, provider ai.CompletionProvider, publisher events.EventPublisher, logger *slog.Logger) RoadmapService {
	return &roadmapService{
		kv:        kv,
		provider:  provider,
		publisher: publisher,
		logger:    logger,
	}
}

// Generate requires an onboarded profile. Degradation policy: an
// unconfigured provider or a failed call falls back to the template for the
// target goal; the single call is never retried. The result is persisted
// whichever path produced it.
func (s *roadmapService) Generate(ctx context.Context, userID string) (*models.Roadmap, error) {
	var profile models.Profile
	if err := s.kv.Get(ctx, store.ProfileKey(userID), &profile); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: complete your profile before generating a roadmap", ErrPreconditionFailed)
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	now := time.Now().UTC()
	roadmap := &models.Roadmap{
		UserID:      userID,
		TargetGoal:  profile.TargetGoal,
		CreatedAt:   now,
		LastUpdated: now,
	}

	content, fromTemplate := s.generateContent(ctx, &profile)
	roadmap.Content = content
	roadmap.IsTemplate = fromTemplate

	if err := s.kv.Set(ctx, store.RoadmapKey(userID), roadmap); err != nil {
		return nil, fmt.Errorf("failed to persist roadmap: %w", err)
	}

	if err := s.publisher.Publish(ctx, events.NewEvent(events.TypeRoadmapGenerated, map[string]interface{}{
		"userId":     userID,
		"targetGoal": profile.TargetGoal,
		"isTemplate": fromTemplate,
	})); err != nil {
		s.logger.Error("failed to publish roadmap event", "error", err, "user_id", userID)
	}

	return roadmap, nil
}

func (s *roadmapService) generateContent(ctx context.Context, profile *models.Profile) (models.RoadmapContent, bool) {
	if !s.provider.Configured() {
		s.logger.Info("roadmap provider not configured, using template", "target_goal", profile.TargetGoal)
		return templateForGoal(profile.TargetGoal), true
	}

	reply, err := s.provider.Complete(ctx, ai.CompletionRequest{
		System:      "You are an expert learning-path designer. Respond with JSON only, no prose.",
		Messages:    []ai.Message{{Role: "user", Content: buildRoadmapPrompt(profile)}},
		Temperature: 0.7,
	})
	if err != nil {
		s.logger.Warn("roadmap generation failed, falling back to template",
			"error", err, "provider", s.provider.Name())
		return templateForGoal(profile.TargetGoal), true
	}

	var content models.RoadmapContent
	raw := ai.ExtractJSONObject(reply)
	if raw == "" {
		raw = reply
	}
	if err := json.Unmarshal([]byte(raw), &content); err != nil || len(content.Phases) == 0 {
		s.logger.Warn("roadmap response was not parseable, falling back to template", "error", err)
		return templateForGoal(profile.TargetGoal), true
	}

	return content, false
}

// Get returns the stored roadmap, or nil when the user has none.
func (s *roadmapService) Get(ctx context.Context, userID string) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	err := s.kv.Get(ctx, store.RoadmapKey(userID), &roadmap)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load roadmap: %w", err)
	}
	return &roadmap, nil
}

func buildRoadmapPrompt(profile *models.Profile) string {
	var b strings.Builder

	b.WriteString("Create a personalized learning roadmap for the following learner:\n")
	fmt.Fprintf(&b, "- Background: %s\n", orNotSpecified(profile.Background))
	fmt.Fprintf(&b, "- Current role: %s\n", orNotSpecified(profile.CurrentRole))
	fmt.Fprintf(&b, "- Years of experience: %s\n", orNotSpecified(profile.YearsOfExperience))
	fmt.Fprintf(&b, "- Known skills: %s\n", orNotSpecified(strings.Join(profile.KnownSkills, ", ")))
	fmt.Fprintf(&b, "- Target goal: %s\n", orNotSpecified(profile.TargetGoal))
	fmt.Fprintf(&b, "- Learning pace: %s\n", orNotSpecified(profile.LearningPace))
	fmt.Fprintf(&b, "- Hours per week: %s\n", orNotSpecified(profile.HoursPerWeek))
	fmt.Fprintf(&b, "- Learning style: %s\n", orNotSpecified(profile.LearningStyle))

	b.WriteString(`
Respond with a JSON object of this exact shape:
{
  "phases": [
    {
      "phaseNumber": 1,
      "title": "...",
      "description": "...",
      "estimatedWeeks": 4,
      "modules": [
        {
          "moduleId": "kebab-case-id",
          "title": "...",
          "description": "...",
          "topics": ["..."],
          "estimatedHours": 20,
          "difficulty": "beginner|intermediate|advanced",
          "resources": [{"type": "documentation|book|course", "title": "...", "url": "..."}]
        }
      ]
    }
  ],
  "totalEstimatedWeeks": 24,
  "skillsToMaster": ["..."]
}`)

	return b.String()
}

func orNotSpecified(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Not specified"
	}
	return v
}
