package types

import "time"

// Question is submitted anonymously against a session and never mutated.
type Question struct {
	ID        string     `json:"id,omitempty"`
	SessionID string     `json:"session_id"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type QuestionsResponse struct {
	Success      bool       `json:"success"`
	Session      *Session   `json:"session,omitempty"`
	Questions    []Question `json:"questions,omitempty"`
	ErrorMessage string     `json:"error,omitempty"` // only set on failure
}
