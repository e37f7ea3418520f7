package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiProvider wraps the Gemini SDK. Used for topic-content generation,
// which hard-fails when the key is absent instead of falling back.
type GeminiProvider struct {
	apiKey string
	model  string

	// The SDK client is built on first use; initOnce makes that safe for
	// concurrent requests and pins the first error for every caller.
	initOnce sync.Once
	client   *genai.Client
	initErr  error
}

func NewGeminiProvider(apiKey string) *GeminiProvider {
	return &GeminiProvider{
		apiKey: apiKey,
		model:  defaultGeminiModel,
	}
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Configured() bool { return strings.TrimSpace(p.apiKey) != "" }

func (p *GeminiProvider) ensureClient(ctx context.Context) error {
	p.initOnce.Do(func() {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: p.apiKey})
		if err != nil {
			p.initErr = fmt.Errorf("failed to initialize gemini client: %w", err)
			return
		}
		p.client = client
	})
	return p.initErr
}

// Complete flattens the request into a single prompt; Gemini carries the
// system instruction inline rather than as a separate message role.
func (p *GeminiProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if !p.Configured() {
		return "", ErrNotConfigured
	}
	if err := p.ensureClient(ctx); err != nil {
		return "", err
	}

	var prompt strings.Builder
	if req.System != "" {
		prompt.WriteString(req.System)
		prompt.WriteString("\n\n")
	}
	for _, m := range req.Messages {
		prompt.WriteString(m.Content)
		prompt.WriteString("\n")
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt.String()), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := cleanModelOutput(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}

// cleanModelOutput strips markdown code fences models like to wrap JSON in.
func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
