package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ChrisCoolDev/qalive-app/authstate"
	"github.com/ChrisCoolDev/qalive-app/slug"
	"github.com/ChrisCoolDev/qalive-app/types"
)

// PageSize is the fixed dashboard page length.
const PageSize = 5

// SessionTTL is how long a new session accepts questions.
const SessionTTL = 4 * time.Hour

// SessionStore owns the dashboard: the current session page, the aggregate
// counters, pagination, and the create-session workflow. It mirrors the
// current principal from the auth-state feed but never forces a refetch on
// credential changes.
type SessionStore struct {
	mu      sync.Mutex
	backend Backend
	origin  string

	unsubscribe func()

	sessions       []types.Session
	totalSessions  int
	totalQuestions int
	activeSessions int
	page           int
	loading        bool
	errorMsg       string

	sessionName        string
	accessCode         string
	successMsg         string
	createdSessionID   string
	createdSessionSlug string

	user *types.Principal

	// fetchGen makes overlapping dashboard fetches latest-request-wins:
	// a fetch that finds a newer generation on return discards its results.
	fetchGen uint64
}

func NewSessionStore(backend Backend, notifier *authstate.Notifier, origin string) *SessionStore {
	s := &SessionStore{
		backend: backend,
		origin:  strings.TrimSuffix(origin, "/"),
		page:    1,
	}
	if notifier != nil {
		s.unsubscribe = notifier.Subscribe(func(_ authstate.Event, p *types.Principal) {
			s.mu.Lock()
			s.user = p
			s.mu.Unlock()
		})
	}
	return s
}

// Close detaches the store from the auth-state feed.
func (s *SessionStore) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// FetchDashboardData reloads the session page and the aggregate counters in
// parallel; both queries must land and the first failure wins. It is the one
// entry point for refreshing dashboard state - every mutation re-runs it
// rather than patching fields incrementally. On failure the previous data is
// left untouched. A fetch superseded by a newer one discards its results,
// returns false, and leaves loading to the newer fetch.
func (s *SessionStore) FetchDashboardData() bool {
	s.mu.Lock()
	s.fetchGen++
	gen := s.fetchGen
	page := s.page
	s.loading = true
	s.errorMsg = ""
	s.mu.Unlock()

	var (
		sessions []types.Session
		stats    types.DashboardStats
		sessErr  error
		statsErr error
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		sessions, sessErr = s.backend.FetchSessions(page, PageSize)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = s.backend.FetchDashboardStats()
	}()
	wg.Wait()

	err := sessErr
	if err == nil {
		err = statsErr
	}

	// A page beyond the fresh totals (possible on a store that had no totals
	// yet) is pulled back in range and its window fetched once more, so the
	// snapshot never reports a page past TotalPages.
	if err == nil {
		if last := totalPagesFor(stats.TotalSessions); page > last {
			page = last
			sessions, err = s.backend.FetchSessions(page, PageSize)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.fetchGen {
		return false
	}

	s.loading = false
	if err != nil {
		s.errorMsg = err.Error()
		return false
	}

	s.page = page
	s.sessions = sessions
	s.totalSessions = stats.TotalSessions
	s.totalQuestions = stats.TotalQuestions
	s.activeSessions = stats.ActiveSessions
	return true
}

// CreateSession runs the create workflow: slug derivation, uniqueness
// resolution, expiry computation, insert, then a full dashboard refresh so
// the new session shows up with consistent totals. Inputs are cleared only
// on success.
func (s *SessionStore) CreateSession() bool {
	s.mu.Lock()
	s.loading = true
	s.errorMsg = ""
	s.successMsg = ""
	s.createdSessionID = ""
	s.createdSessionSlug = ""
	user := s.user
	name := s.sessionName
	code := strings.TrimSpace(s.accessCode)
	s.mu.Unlock()

	if user == nil {
		s.fail("Please sign in to create a session.")
		return false
	}

	uniqueSlug, err := slug.ResolveUnique(slug.Make(name), s.backend.SlugExists)
	if err != nil {
		s.fail(err.Error())
		return false
	}

	var accessCode *string
	if code != "" {
		accessCode = &code
	}

	created, err := s.backend.InsertSession(types.NewSession{
		Name:       name,
		Slug:       uniqueSlug,
		AccessCode: accessCode,
		UserID:     user.ID,
		ExpiresAt:  time.Now().Add(SessionTTL),
	})

	s.mu.Lock()
	s.loading = false
	if err != nil {
		// Keep the inputs so the user can retry.
		s.errorMsg = err.Error()
		s.mu.Unlock()
		return false
	}

	s.successMsg = "Session created successfully!"
	s.createdSessionID = created.ID
	s.createdSessionSlug = created.Slug
	s.sessionName = ""
	s.accessCode = ""
	s.mu.Unlock()

	s.FetchDashboardData()
	return true
}

// NextPage advances the page and refetches, but only when the page actually
// moves.
func (s *SessionStore) NextPage() {
	s.mu.Lock()
	changed := s.page < s.totalPagesLocked()
	if changed {
		s.page++
	}
	s.mu.Unlock()

	if changed {
		s.FetchDashboardData()
	}
}

func (s *SessionStore) PrevPage() {
	s.mu.Lock()
	changed := s.page > 1
	if changed {
		s.page--
	}
	s.mu.Unlock()

	if changed {
		s.FetchDashboardData()
	}
}

// TotalPages derives the page count from the session total, minimum 1.
func (s *SessionStore) TotalPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPagesLocked()
}

func (s *SessionStore) totalPagesLocked() int {
	return totalPagesFor(s.totalSessions)
}

func totalPagesFor(totalSessions int) int {
	if totalSessions == 0 {
		return 1
	}
	return (totalSessions + PageSize - 1) / PageSize
}

// SessionQuestionURL is the shareable submission link for the session just
// created, or "" when there is none.
func (s *SessionStore) SessionQuestionURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createdSessionSlug == "" {
		return ""
	}
	return fmt.Sprintf("%s/ask/%s", s.origin, s.createdSessionSlug)
}

// QRCodePath is the in-app route for the created session's QR view, or ""
// when no session was created; callers treat "" as a no-op redirect.
func (s *SessionStore) QRCodePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createdSessionSlug == "" {
		return ""
	}
	return fmt.Sprintf("/session/%s/qrcode", s.createdSessionSlug)
}

// SetUser seeds the current principal directly, for request-scoped stores
// that already know the caller.
func (s *SessionStore) SetUser(p *types.Principal) {
	s.mu.Lock()
	s.user = p
	s.mu.Unlock()
}

func (s *SessionStore) User() *types.Principal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *SessionStore) SetSessionName(name string) {
	s.mu.Lock()
	s.sessionName = name
	s.mu.Unlock()
}

func (s *SessionStore) SetAccessCode(code string) {
	s.mu.Lock()
	s.accessCode = code
	s.mu.Unlock()
}

// SetPage jumps straight to a page. The lower bound is enforced here; the
// upper bound against whatever totals are known, and again by the next
// FetchDashboardData once fresh totals land. It does not refetch.
func (s *SessionStore) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	if max := s.totalPagesLocked(); s.totalSessions > 0 && page > max {
		page = max
	}
	s.page = page
}

func (s *SessionStore) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *SessionStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *SessionStore) ErrorMsg() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorMsg
}

func (s *SessionStore) SuccessMsg() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.successMsg
}

func (s *SessionStore) CreatedSession() (id, slug string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createdSessionID, s.createdSessionSlug
}

// DashboardSnapshot is a consistent copy of the list and counter state.
type DashboardSnapshot struct {
	Sessions       []types.Session
	TotalSessions  int
	TotalQuestions int
	ActiveSessions int
	Page           int
	TotalPages     int
}

func (s *SessionStore) Snapshot() DashboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	sessions := make([]types.Session, len(s.sessions))
	copy(sessions, s.sessions)
	return DashboardSnapshot{
		Sessions:       sessions,
		TotalSessions:  s.totalSessions,
		TotalQuestions: s.totalQuestions,
		ActiveSessions: s.activeSessions,
		Page:           s.page,
		TotalPages:     s.totalPagesLocked(),
	}
}

func (s *SessionStore) fail(msg string) {
	s.mu.Lock()
	s.errorMsg = msg
	s.loading = false
	s.mu.Unlock()
}
