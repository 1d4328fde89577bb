package model

import "time"

type ChatSaveRequest struct {
	UserMessage string  `json:"user_message"`
	Message     string  `json:"message"`
	AIResponse  string  `json:"ai_response"`
	Response    string  `json:"response"`
	StepOfFaith *string `json:"step_of_faith"`
}

// LegacyChatSaveRequest is the degraded-mode body. UserID is untyped because
// legacy callers send it either as a number or a string.
type LegacyChatSaveRequest struct {
	UserID      any    `json:"userId"`
	UserMessage string `json:"user_message"`
	Message     string `json:"message"`
	AIResponse  string `json:"ai_response"`
	Response    string `json:"response"`
}

type ChatMessage struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	UserMessage string    `json:"user_message"`
	AIResponse  string    `json:"ai_response"`
	StepOfFaith *string   `json:"step_of_faith"`
	CreatedAt   time.Time `json:"created_at"`
}

// LegacyChatMessage rows live in a separate table keyed by a free-text owner
// identifier with no foreign key back to users.
type LegacyChatMessage struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	UserMessage string    `json:"user_message"`
	AIResponse  string    `json:"ai_response"`
	CreatedAt   time.Time `json:"created_at"`
}
