package models

import (
	"encoding/json"
	"time"
)

// Assessment is an append-only submission stored under
// assessment:{userId}:{moduleId}:{timestamp}. There is no update or delete
// path.
type Assessment struct {
	UserID      string          `json:"userId"`
	ModuleID    string          `json:"moduleId"`
	Score       float64         `json:"score"`
	Results     json.RawMessage `json:"results"`
	CompletedAt time.Time       `json:"completedAt"`
}

// Challenge is a coding submission stored under challenge:{userId}:{challengeId},
// overwritten on resubmission.
type Challenge struct {
	UserID      string    `json:"userId"`
	ChallengeID string    `json:"challengeId"`
	Code        string    `json:"code"`
	CompletedAt time.Time `json:"completedAt"`
}
