package models

import "time"

// Roadmap is the learning plan stored under roadmap:{userId}. Exactly one per
// user; regeneration replaces it.
type Roadmap struct {
	UserID      string         `json:"userId"`
	TargetGoal  string         `json:"targetGoal"`
	Content     RoadmapContent `json:"content"`
	IsTemplate  bool           `json:"isTemplate,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	LastUpdated time.Time      `json:"lastUpdated"`
}

type RoadmapContent struct {
	Phases              []RoadmapPhase `json:"phases"`
	TotalEstimatedWeeks int            `json:"totalEstimatedWeeks"`
	SkillsToMaster      []string       `json:"skillsToMaster"`
}

type RoadmapPhase struct {
	PhaseNumber    int             `json:"phaseNumber"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	EstimatedWeeks int             `json:"estimatedWeeks"`
	Modules        []RoadmapModule `json:"modules"`
}

// RoadmapModule is the learning unit progress and topic content hang off.
type RoadmapModule struct {
	ModuleID       string           `json:"moduleId"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Topics         []string         `json:"topics"`
	EstimatedHours int              `json:"estimatedHours"`
	Difficulty     string           `json:"difficulty"`
	Resources      []ModuleResource `json:"resources"`
}

type ModuleResource struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}
