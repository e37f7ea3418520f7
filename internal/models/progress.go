package models

import "time"

// Progress status values.
const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Progress tracks a user's work on one roadmap module, stored under
// progress:{userId}:{moduleId}. TimeSpent accumulates across writes;
// CompletedAt is stamped on the first transition to completed and never
// cleared afterwards.
type Progress struct {
	UserID           string     `json:"userId"`
	ModuleID         string     `json:"moduleId"`
	Status           string     `json:"status"`
	TimeSpent        int        `json:"timeSpent"`
	PerformanceScore float64    `json:"performanceScore"`
	Notes            string     `json:"notes"`
	CompletedTopics  []string   `json:"completedTopics"`
	LastUpdated      time.Time  `json:"lastUpdated"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}
