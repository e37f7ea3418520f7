package ai

import (
	"context"
	"errors"
)

// Provider errors. Consumers decide how each one degrades: roadmap
// generation falls back to a template, topic content surfaces a
// configuration error, chat returns a setup notice.
var (
	ErrNotConfigured = errors.New("completion provider not configured")
	ErrEmptyResponse = errors.New("completion provider returned no content")
)

// Message is one turn of a chat-completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the provider-independent request shape. Each adapter
// translates it into its own wire format.
type CompletionRequest struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// CompletionProvider is a chat-completion backend. Implementations declare
// whether they are usable via Configured; callers must not invoke Complete
// on an unconfigured provider.
type CompletionProvider interface {
	Name() string
	Configured() bool
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
