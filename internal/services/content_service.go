package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/skillpath/learning-service/internal/ai"
	"github.com/skillpath/learning-service/internal/models"
	"github.com/skillpath/learning-service/internal/store"
	"github.com/skillpath/learning-service/internal/validator"
)

type contentService struct {
	kv        *store.KV
	provider  ai.CompletionProvider
	logger    *slog.Logger
	validator *validator.Validator
}

func NewContentService(kv *store.KV, provider ai.CompletionProvider, logger *slog.Logger, v *validator.Validator) ContentService {
	return &contentService{
		kv:        kv,
		provider:  provider,
		logger:    logger,
		validator: v,
	}
}

// topicContentReply is the JSON shape requested from the provider.
type topicContentReply struct {
	Explanation          string   `json:"explanation"`
	KeyPoints            []string `json:"keyPoints"`
	Applications         []string `json:"applications"`
	Pitfalls             []string `json:"pitfalls"`
	PracticeIdeas        []string `json:"practiceIdeas"`
	YoutubeSearchQueries []string `json:"youtubeSearchQueries"`
}

// Generate is cache-aside over topic-content:{userId}:{moduleId}:{topic}.
// A hit returns the stored content verbatim with no freshness check. A miss
// hard-requires the provider key; there is no template fallback here, unlike
// roadmap generation. Provider replies that fail to parse degrade into a
// minimal content object rather than an error.
func (s *contentService) Generate(ctx context.Context, userID string, req *TopicContentRequest) (*models.TopicContent, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, verrs.Error())
	}

	key := store.TopicContentKey(userID, req.ModuleID, req.Topic)

	var cached models.TopicContent
	err := s.kv.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to check content cache: %w", err)
	}

	if !s.provider.Configured() {
		return nil, fmt.Errorf("%w: topic content generation requires a configured provider key", ErrProviderNotConfigured)
	}

	reply, err := s.provider.Complete(ctx, ai.CompletionRequest{
		System:      "You are an expert technical educator. Respond with JSON only.",
		Messages:    []ai.Message{{Role: "user", Content: buildTopicPrompt(req)}},
		Temperature: 0.5,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}

	content := s.parseReply(reply, req)
	content.GeneratedAt = time.Now().UTC()

	if err := s.kv.Set(ctx, key, content); err != nil {
		return nil, fmt.Errorf("failed to persist topic content: %w", err)
	}

	return content, nil
}

// parseReply extracts the first JSON object from the reply. Anything that
// does not parse is absorbed into a degraded-but-valid content object built
// from the raw text; a parse error never reaches the caller.
func (s *contentService) parseReply(reply string, req *TopicContentRequest) *models.TopicContent {
	content := &models.TopicContent{
		Topic:         req.Topic,
		ModuleID:      req.ModuleID,
		ModuleTitle:   req.ModuleTitle,
		Difficulty:    req.Difficulty,
		KeyPoints:     []string{},
		Applications:  []string{},
		Pitfalls:      []string{},
		PracticeIdeas: []string{},
		YoutubeVideos: []models.YoutubeVideo{},
	}

	raw := ai.ExtractJSONObject(reply)
	if raw == "" {
		s.logger.Warn("no JSON object in content reply, synthesizing from raw text", "topic", req.Topic)
		content.Explanation = strings.TrimSpace(reply)
		return content
	}

	var parsed topicContentReply
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		s.logger.Warn("unparseable content reply, synthesizing from raw text", "topic", req.Topic, "error", err)
		content.Explanation = strings.TrimSpace(reply)
		return content
	}

	content.Explanation = parsed.Explanation
	if parsed.KeyPoints != nil {
		content.KeyPoints = parsed.KeyPoints
	}
	if parsed.Applications != nil {
		content.Applications = parsed.Applications
	}
	if parsed.Pitfalls != nil {
		content.Pitfalls = parsed.Pitfalls
	}
	if parsed.PracticeIdeas != nil {
		content.PracticeIdeas = parsed.PracticeIdeas
	}

	// Each suggested query becomes a passive search link; no video API is
	// called.
	for _, query := range parsed.YoutubeSearchQueries {
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		content.YoutubeVideos = append(content.YoutubeVideos, models.YoutubeVideo{
			Title:     query,
			SearchURL: "https://www.youtube.com/results?search_query=" + url.QueryEscape(query),
		})
	}

	return content
}

// Get returns stored content, or nil when none exists.
func (s *contentService) Get(ctx context.Context, userID, moduleID, topic string) (*models.TopicContent, error) {
	var content models.TopicContent
	err := s.kv.Get(ctx, store.TopicContentKey(userID, moduleID, topic), &content)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load topic content: %w", err)
	}
	return &content, nil
}

func buildTopicPrompt(req *TopicContentRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Explain the topic %q", req.Topic)
	if req.ModuleTitle != "" {
		fmt.Fprintf(&b, " from the module %q", req.ModuleTitle)
	}
	if req.Difficulty != "" {
		fmt.Fprintf(&b, " at %s level", req.Difficulty)
	}
	if req.TargetGoal != "" {
		fmt.Fprintf(&b, " for someone working towards becoming a %s", req.TargetGoal)
	}
	b.WriteString(".\n")

	b.WriteString(`
Respond with a JSON object of this exact shape:
{
  "explanation": "a thorough explanation of the topic",
  "keyPoints": ["..."],
  "applications": ["real-world applications"],
  "pitfalls": ["common mistakes"],
  "practiceIdeas": ["hands-on exercises"],
  "youtubeSearchQueries": ["search phrases for good video tutorials"]
}`)

	return b.String()
}
