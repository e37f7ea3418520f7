package models

import "time"

// MaxChatHistory caps the stored conversation at the most recent entries;
// older messages are trimmed first.
const MaxChatHistory = 50

type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
