package model

import "time"

type FaithStepCreateRequest struct {
	Title      string  `json:"title"`
	Passage    *string `json:"passage"`
	Meditation *string `json:"meditation"`
	Step       int     `json:"step"`
	Source     string  `json:"source"`
}

type FaithStepUpdateRequest struct {
	Completed bool `json:"completed"`
}

type FaithStep struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Passage     *string    `json:"passage"`
	Meditation  *string    `json:"meditation"`
	Step        int        `json:"step"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	Source      string     `json:"source"`
}

type FaithStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Streak    int `json:"streak"`
}
