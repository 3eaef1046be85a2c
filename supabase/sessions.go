package supabase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ChrisCoolDev/qalive-app/types"
	"github.com/ChrisCoolDev/qalive-app/utils"
	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// Backend wraps a token-scoped client plus the calling principal and exposes
// the queries the stores need. A zero UserID means no authenticated caller.
type Backend struct {
	client *supabase.Client
	userID string
}

func NewBackend(client *supabase.Client, userID string) *Backend {
	return &Backend{client: client, userID: userID}
}

// sessionRow is the PostgREST row shape for "*, questions(count)".
type sessionRow struct {
	types.Session
	Questions []struct {
		Count int `json:"count"`
	} `json:"questions"`
}

// statsRow carries only what the dashboard aggregation needs.
type statsRow struct {
	ExpiresAt *time.Time `json:"expires_at"`
	Questions []struct {
		Count int `json:"count"`
	} `json:"questions"`
}

// FetchSessions returns one page of the caller's sessions, newest first,
// with question counts and is_active derived against the current time.
func (b *Backend) FetchSessions(page, pageSize int) ([]types.Session, error) {
	if b.userID == "" {
		return nil, types.ErrNotAuthenticated
	}

	from := (page - 1) * pageSize
	to := from + pageSize - 1

	resp, _, err := b.client.From("sessions").
		Select("*, questions(count)", "", false).
		Eq("user_id", b.userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Range(from, to, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrQueryFailed, err)
	}

	var rows []sessionRow
	if err := json.Unmarshal(resp, &rows); err != nil {
		return nil, fmt.Errorf("%w: failed to decode session data: %v", types.ErrQueryFailed, err)
	}

	now := time.Now()
	sessions := make([]types.Session, 0, len(rows))
	for _, row := range rows {
		session := row.Session
		session.QuestionCount = embeddedCount(row.Questions)
		deriveSessionFields(&session, now)
		sessions = append(sessions, session)
	}

	return sessions, nil
}

// deriveSessionFields fills the per-fetch derived fields: the active flag
// and the display strings the session cards render.
func deriveSessionFields(session *types.Session, now time.Time) {
	session.IsActive = types.SessionActive(session.ExpiresAt, now)
	if session.ExpiresAt != nil {
		iso := session.ExpiresAt.Format(time.RFC3339)
		session.ExpiresIn = utils.TimeRemaining(*session.ExpiresAt, now)
		session.ExpiresAtDisplay = utils.FormatDateTimeLocal(iso)
	}
	if session.CreatedAt != nil {
		iso := session.CreatedAt.Format(time.RFC3339)
		session.CreatedDate = utils.FormatDateLocal(iso)
		session.CreatedTime = utils.FormatTimeLocal(iso)
	}
}

// FetchDashboardStats scans ALL of the caller's sessions and computes the
// dashboard totals in one pass. Nothing is cached; every call recomputes.
func (b *Backend) FetchDashboardStats() (types.DashboardStats, error) {
	if b.userID == "" {
		return types.DashboardStats{}, types.ErrNotAuthenticated
	}

	resp, _, err := b.client.From("sessions").
		Select("expires_at, questions(count)", "", false).
		Eq("user_id", b.userID).
		Execute()
	if err != nil {
		return types.DashboardStats{}, fmt.Errorf("%w: %v", types.ErrQueryFailed, err)
	}

	var rows []statsRow
	if err := json.Unmarshal(resp, &rows); err != nil {
		return types.DashboardStats{}, fmt.Errorf("%w: failed to decode stats data: %v", types.ErrQueryFailed, err)
	}

	now := time.Now()
	stats := types.DashboardStats{TotalSessions: len(rows)}
	for _, row := range rows {
		stats.TotalQuestions += embeddedCount(row.Questions)
		if types.SessionActive(row.ExpiresAt, now) {
			stats.ActiveSessions++
		}
	}

	return stats, nil
}

// SlugExists reports whether any session already holds the candidate slug.
// Absence is the normal outcome here, not an error.
func (b *Backend) SlugExists(candidate string) (bool, error) {
	resp, _, err := b.client.From("sessions").
		Select("id", "", false).
		Eq("slug", candidate).
		Limit(1, "").
		Execute()
	if err != nil {
		return false, fmt.Errorf("%w: %v", types.ErrQueryFailed, err)
	}

	var rows []types.Session
	if err := json.Unmarshal(resp, &rows); err != nil {
		return false, fmt.Errorf("%w: failed to decode slug lookup: %v", types.ErrQueryFailed, err)
	}

	return len(rows) > 0, nil
}

// InsertSession creates the row and returns the assigned id and slug. A
// duplicate-slug constraint violation surfaces here, which is the real
// backstop behind the SlugExists pre-check.
func (b *Backend) InsertSession(row types.NewSession) (types.CreatedSession, error) {
	resp, _, err := b.client.From("sessions").
		Insert([]types.NewSession{row}, false, "", "representation", "").
		Execute()
	if err != nil {
		return types.CreatedSession{}, fmt.Errorf("%w: %v", types.ErrInsertFailed, err)
	}

	var created []types.CreatedSession
	if err := json.Unmarshal(resp, &created); err != nil {
		return types.CreatedSession{}, fmt.Errorf("%w: failed to decode insert result: %v", types.ErrInsertFailed, err)
	}
	if len(created) == 0 {
		return types.CreatedSession{}, fmt.Errorf("%w: no row returned", types.ErrInsertFailed)
	}

	return created[0], nil
}

// GetSessionBySlug resolves a session for the question view. Unlike
// SlugExists, absence is an error for this caller.
func (b *Backend) GetSessionBySlug(candidate string) (types.Session, error) {
	resp, _, err := b.client.From("sessions").
		Select("id, name, slug, expires_at", "", false).
		Eq("slug", candidate).
		Limit(1, "").
		Execute()
	if err != nil {
		return types.Session{}, fmt.Errorf("%w: %v", types.ErrQueryFailed, err)
	}

	var rows []types.Session
	if err := json.Unmarshal(resp, &rows); err != nil {
		return types.Session{}, fmt.Errorf("%w: failed to decode session data: %v", types.ErrQueryFailed, err)
	}
	if len(rows) == 0 {
		return types.Session{}, fmt.Errorf("%w: no session with slug %q", types.ErrNotFound, candidate)
	}

	session := rows[0]
	deriveSessionFields(&session, time.Now())
	return session, nil
}

func embeddedCount(questions []struct {
	Count int `json:"count"`
}) int {
	if len(questions) == 0 {
		return 0
	}
	return questions[0].Count
}
