package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/skillpath/learning-service/internal/ai"
	"github.com/skillpath/learning-service/internal/models"
	"github.com/skillpath/learning-service/internal/store"
	"github.com/skillpath/learning-service/internal/validator"
)

const chatSetupMessage = "The learning assistant is not set up yet. Ask your administrator to configure an AI provider key to enable chat."

type chatService struct {
	kv        *store.KV
	provider  ai.CompletionProvider
	logger    *slog.Logger
	validator *validator.Validator
}

func NewChatService(kv *store.KV, provider ai.CompletionProvider, logger *slog.Logger, v *validator.Validator) ChatService {
	return &chatService{
		kv:        kv,
		provider:  provider,
		logger:    logger,
		validator: v,
	}
}

// Send builds a system prompt from the user's profile and roadmap (both
// optional), forwards the conversation to the provider, and appends both
// sides of the exchange to the stored history. An unconfigured provider is
// not an error: the reply carries a requiresSetup flag instead.
func (s *chatService) Send(ctx context.Context, userID string, req *ChatRequest) (*ChatResponse, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, verrs.Error())
	}

	if !s.provider.Configured() {
		return &ChatResponse{Response: chatSetupMessage, RequiresSetup: true}, nil
	}

	system := s.buildSystemPrompt(ctx, userID)

	messages := make([]ai.Message, 0, len(req.ConversationHistory)+1)
	for _, turn := range req.ConversationHistory {
		messages = append(messages, ai.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, ai.Message{Role: "user", Content: req.Message})

	reply, err := s.provider.Complete(ctx, ai.CompletionRequest{
		System:      system,
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}

	if err := s.appendHistory(ctx, userID, req.Message, reply); err != nil {
		// The reply already exists; losing the history write is the known
		// no-compensation behavior.
		s.logger.Error("failed to persist chat history", "error", err, "user_id", userID)
	}

	return &ChatResponse{Response: reply}, nil
}

func (s *chatService) buildSystemPrompt(ctx context.Context, userID string) string {
	var profile models.Profile
	profileLoaded := s.kv.Get(ctx, store.ProfileKey(userID), &profile) == nil

	var roadmap models.Roadmap
	roadmapLoaded := s.kv.Get(ctx, store.RoadmapKey(userID), &roadmap) == nil

	var b strings.Builder
	b.WriteString("You are a supportive learning mentor on the SkillPath platform. Keep answers practical and encouraging.\n\nLearner context:\n")

	if profileLoaded {
		fmt.Fprintf(&b, "- Goal: %s\n", orNotSpecified(profile.TargetGoal))
		fmt.Fprintf(&b, "- Background: %s\n", orNotSpecified(profile.Background))
		fmt.Fprintf(&b, "- Known skills: %s\n", orNotSpecified(strings.Join(profile.KnownSkills, ", ")))
	} else {
		b.WriteString("- Goal: Not specified\n- Background: Not specified\n- Known skills: Not specified\n")
	}

	if roadmapLoaded && len(roadmap.Content.Phases) > 0 {
		b.WriteString("- Current roadmap phases: ")
		titles := make([]string, 0, len(roadmap.Content.Phases))
		for _, phase := range roadmap.Content.Phases {
			titles = append(titles, phase.Title)
		}
		b.WriteString(strings.Join(titles, ", "))
		b.WriteString("\n")
	} else {
		b.WriteString("- Current roadmap: Not specified\n")
	}

	return b.String()
}

// appendHistory adds the user message and assistant reply, trimming the
// stored history to the most recent entries.
func (s *chatService) appendHistory(ctx context.Context, userID, userMessage, assistantReply string) error {
	key := store.ChatKey(userID)

	var history []models.ChatMessage
	if err := s.kv.Get(ctx, key, &history); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	now := time.Now().UTC()
	history = append(history,
		models.ChatMessage{Role: "user", Content: userMessage, Timestamp: now},
		models.ChatMessage{Role: "assistant", Content: assistantReply, Timestamp: now},
	)

	if len(history) > models.MaxChatHistory {
		history = history[len(history)-models.MaxChatHistory:]
	}

	return s.kv.Set(ctx, key, history)
}

func (s *chatService) History(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	var history []models.ChatMessage
	err := s.kv.Get(ctx, store.ChatKey(userID), &history)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []models.ChatMessage{}, nil
		}
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return history, nil
}
