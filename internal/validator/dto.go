package validator

import "encoding/json"

// SignupRequest creates a confirmed account.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=200"`
}

// ResetPasswordRequest replaces the password on an existing account.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// DeleteUserRequest removes an account by email.
type DeleteUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ProfileCreateRequest carries the onboarding fields. Identity fields are
// stamped from the verified token, never taken from this payload.
type ProfileCreateRequest struct {
	Background         string   `json:"background" validate:"omitempty,max=2000"`
	CurrentRole        string   `json:"currentRole" validate:"omitempty,max=200"`
	YearsOfExperience  string   `json:"yearsOfExperience" validate:"omitempty,max=50"`
	KnownSkills        []string `json:"knownSkills" validate:"omitempty,max=100,dive,max=100"`
	TargetGoal         string   `json:"targetGoal" validate:"omitempty,max=200"`
	PreferredLanguage  string   `json:"preferredLanguage" validate:"omitempty,max=100"`
	LearningPace       string   `json:"learningPace" validate:"omitempty,max=50"`
	HoursPerWeek       string   `json:"hoursPerWeek" validate:"omitempty,max=50"`
	LearningStyle      string   `json:"learningStyle" validate:"omitempty,max=100"`
	OnboardingComplete bool     `json:"onboardingComplete"`
}

// ProgressUpdateRequest merges into the stored record: status and the
// pointer fields replace only when supplied, timeSpent always accumulates.
type ProgressUpdateRequest struct {
	ModuleID         string   `json:"moduleId" validate:"required,max=200"`
	Status           string   `json:"status" validate:"omitempty,oneof=not-started in-progress completed"`
	TimeSpent        int      `json:"timeSpent" validate:"omitempty,min=0"`
	PerformanceScore *float64 `json:"performanceScore" validate:"omitempty,min=0,max=100"`
	Notes            *string  `json:"notes" validate:"omitempty,max=5000"`
	CompletedTopics  []string `json:"completedTopics" validate:"omitempty,dive,max=200"`
}

// TopicContentRequest asks for a generated lesson on one module topic.
type TopicContentRequest struct {
	ModuleID    string `json:"moduleId" validate:"required,max=200"`
	ModuleTitle string `json:"moduleTitle" validate:"omitempty,max=300"`
	Topic       string `json:"topic" validate:"required,max=300"`
	Difficulty  string `json:"difficulty" validate:"omitempty,max=50"`
	TargetGoal  string `json:"targetGoal" validate:"omitempty,max=200"`
}

// ChatTurn is one client-supplied history entry.
type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest sends a new message with optional prior conversation context.
type ChatRequest struct {
	Message             string     `json:"message" validate:"required,max=10000"`
	ConversationHistory []ChatTurn `json:"conversationHistory" validate:"omitempty,dive"`
}

// AssessmentSubmitRequest records one assessment run; submissions are
// append-only.
type AssessmentSubmitRequest struct {
	ModuleID string          `json:"moduleId" validate:"required,max=200"`
	Score    float64         `json:"score" validate:"min=0,max=100"`
	Results  json.RawMessage `json:"results"`
}

// ChallengeSubmitRequest saves a coding-challenge solution.
type ChallengeSubmitRequest struct {
	ChallengeID string `json:"challengeId" validate:"required,max=200"`
	Code        string `json:"code" validate:"required"`
}

// AchievementUpdateRequest unlocks an achievement and awards XP.
type AchievementUpdateRequest struct {
	AchievementID string `json:"achievementId" validate:"required,max=200"`
	XP            int    `json:"xp" validate:"omitempty,min=0"`
}
