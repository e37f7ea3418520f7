package models

import "time"

// Profile is the onboarding record stored under profile:{userId}. It is
// overwritten wholesale on every submission; identity fields come from the
// verified token, never from client input.
type Profile struct {
	UserID             string    `json:"userId"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Background         string    `json:"background"`
	CurrentRole        string    `json:"currentRole"`
	YearsOfExperience  string    `json:"yearsOfExperience"`
	KnownSkills        []string  `json:"knownSkills"`
	TargetGoal         string    `json:"targetGoal"`
	PreferredLanguage  string    `json:"preferredLanguage"`
	LearningPace       string    `json:"learningPace"`
	HoursPerWeek       string    `json:"hoursPerWeek"`
	LearningStyle      string    `json:"learningStyle"`
	OnboardingComplete bool      `json:"onboardingComplete"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
