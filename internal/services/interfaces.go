package services

import (
	"context"

	"github.com/skillpath/learning-service/internal/models"
	"github.com/skillpath/learning-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Request DTOs live with the validator so the tags stay next to the rules.
type SignupRequest = validator.SignupRequest
type ResetPasswordRequest = validator.ResetPasswordRequest
type DeleteUserRequest = validator.DeleteUserRequest
type ProfileCreateRequest = validator.ProfileCreateRequest
type ProgressUpdateRequest = validator.ProgressUpdateRequest
type TopicContentRequest = validator.TopicContentRequest
type ChatRequest = validator.ChatRequest
type AssessmentSubmitRequest = validator.AssessmentSubmitRequest
type ChallengeSubmitRequest = validator.ChallengeSubmitRequest
type AchievementUpdateRequest = validator.AchievementUpdateRequest

// ChatResponse is the assistant reply. RequiresSetup is set (with a canned
// message and no error) when no chat provider is configured.
type ChatResponse struct {
	Response      string `json:"response"`
	RequiresSetup bool   `json:"requiresSetup,omitempty"`
}

// ===== SERVICE INTERFACES =====

// AccountService manages the account lifecycle against the identity
// provider registry. None of these operations require a bearer token.
type AccountService interface {
	Signup(ctx context.Context, req *SignupRequest) (*models.User, error)
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
	DeleteAccount(ctx context.Context, req *DeleteUserRequest) error
}

type ProfileService interface {
	// Save overwrites the profile wholesale, stamping identity fields from
	// the verified token.
	Save(ctx context.Context, identity *models.User, req *ProfileCreateRequest) (*models.Profile, error)
	// Get returns the stored profile, or a minimal stub when none exists.
	Get(ctx context.Context, identity *models.User) (*models.Profile, error)
}

type RoadmapService interface {
	// Generate builds a roadmap from the stored profile, via the completion
	// provider or the template fallback, and persists the result.
	Generate(ctx context.Context, userID string) (*models.Roadmap, error)
	// Get returns the stored roadmap, or nil when none exists.
	Get(ctx context.Context, userID string) (*models.Roadmap, error)
}

type ProgressService interface {
	// Update merges the request into the stored record: timeSpent
	// accumulates, status and detail fields replace only when supplied.
	Update(ctx context.Context, userID string, req *ProgressUpdateRequest) (*models.Progress, error)
	// List returns every progress record in the user's partition.
	List(ctx context.Context, userID string) ([]*models.Progress, error)
}

type ContentService interface {
	// Generate returns cached content when present, otherwise calls the
	// topic-content provider and persists the result permanently.
	Generate(ctx context.Context, userID string, req *TopicContentRequest) (*models.TopicContent, error)
	// Get returns stored content, or nil when none exists.
	Get(ctx context.Context, userID, moduleID, topic string) (*models.TopicContent, error)
}

type ChatService interface {
	Send(ctx context.Context, userID string, req *ChatRequest) (*ChatResponse, error)
	History(ctx context.Context, userID string) ([]models.ChatMessage, error)
}

// SubmissionService records assessment and challenge submissions.
type SubmissionService interface {
	SubmitAssessment(ctx context.Context, userID string, req *AssessmentSubmitRequest) (*models.Assessment, error)
	SubmitChallenge(ctx context.Context, userID string, req *ChallengeSubmitRequest) (*models.Challenge, error)
}

type GamificationService interface {
	Get(ctx context.Context, userID string) (*models.Achievements, error)
	// Unlock is idempotent: a duplicate achievement id is a no-op returning
	// the unchanged state.
	Unlock(ctx context.Context, userID string, req *AchievementUpdateRequest) (*models.Achievements, error)
}

// ReportService exports a user's progress as a spreadsheet.
type ReportService interface {
	ExportProgress(ctx context.Context, identity *models.User) ([]byte, string, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Account() AccountService
	Profile() ProfileService
	Roadmap() RoadmapService
	Progress() ProgressService
	Content() ContentService
	Chat() ChatService
	Submission() SubmissionService
	Gamification() GamificationService
	Report() ReportService

	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
