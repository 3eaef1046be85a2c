package types

import "time"

// Session is a timed question-collection unit owned by one user.
// IsActive and QuestionCount are derived at fetch time and never stored.
type Session struct {
	ID         string     `json:"id,omitempty"` // <-- omitempty is critical
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	AccessCode *string    `json:"access_code,omitempty"` // nullable
	UserID     string     `json:"user_id"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"` // null = never expires

	// Derived display fields, recomputed on every fetch.
	IsActive         bool   `json:"is_active"`
	QuestionCount    int    `json:"question_count"`
	ExpiresIn        string `json:"expires_in,omitempty"`
	ExpiresAtDisplay string `json:"expires_at_display,omitempty"`
	CreatedDate      string `json:"created_date,omitempty"`
	CreatedTime      string `json:"created_time,omitempty"`
}

// SessionActive reports whether a session with the given expiry is live at
// the given instant. A nil expiry means the session never expires.
func SessionActive(expiresAt *time.Time, now time.Time) bool {
	if expiresAt == nil {
		return true
	}
	return expiresAt.After(now)
}

// NewSession is the insert payload for a session row.
type NewSession struct {
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	AccessCode *string   `json:"access_code"`
	UserID     string    `json:"user_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// CreatedSession is what the insert returns.
type CreatedSession struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
}

// DashboardStats are the aggregate counters shown on the overview page,
// recomputed from scratch on every fetch.
type DashboardStats struct {
	TotalSessions  int `json:"total_sessions"`
	TotalQuestions int `json:"total_questions"`
	ActiveSessions int `json:"active_sessions"`
}

type CreateSessionRequest struct {
	Name       string `json:"name"`
	AccessCode string `json:"access_code,omitempty"`
}

type DashboardResponse struct {
	Success        bool      `json:"success"`
	Sessions       []Session `json:"sessions,omitempty"`
	TotalSessions  int       `json:"total_sessions"`
	TotalQuestions int       `json:"total_questions"`
	ActiveSessions int       `json:"active_sessions"`
	Page           int       `json:"page"`
	PageSize       int       `json:"page_size"`
	TotalPages     int       `json:"total_pages"`
	ErrorMessage   string    `json:"error,omitempty"` // only set on failure
}

type CreateSessionResponse struct {
	Success      bool   `json:"success"`
	SessionID    string `json:"session_id,omitempty"`
	Slug         string `json:"slug,omitempty"`
	QuestionURL  string `json:"question_url,omitempty"` // <origin>/ask/<slug>
	QRCodePath   string `json:"qrcode_path,omitempty"`
	Message      string `json:"message,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}
