package store

import (
	"fmt"
	"sync"

	"github.com/ChrisCoolDev/qalive-app/types"
)

// fakeBackend is an in-memory Backend for the store tests. Responses and
// failures are programmable per operation; call counts are recorded.
type fakeBackend struct {
	mu sync.Mutex

	sessions      []types.Session
	stats         types.DashboardStats
	takenSlugs    map[string]bool
	questions     map[string][]types.Question
	sessionBySlug map[string]types.Session

	sessionsErr error
	statsErr    error
	slugErr     error
	insertErr   error
	lookupErr   error
	listErr     error

	fetchSessionsCalls int
	sessionPages       []int
	fetchStatsCalls    int
	slugChecks         []string
	inserted           []types.NewSession
	nextID             int

	// onFetchSessions, when set, runs outside the lock before the sessions
	// result is read; tests use it to hold a fetch in flight.
	onFetchSessions func()
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		takenSlugs:    map[string]bool{},
		questions:     map[string][]types.Question{},
		sessionBySlug: map[string]types.Session{},
	}
}

func (f *fakeBackend) FetchSessions(page, pageSize int) ([]types.Session, error) {
	f.mu.Lock()
	f.fetchSessionsCalls++
	f.sessionPages = append(f.sessionPages, page)
	hook := f.onFetchSessions
	f.mu.Unlock()

	if hook != nil {
		hook()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sessionsErr != nil {
		return nil, f.sessionsErr
	}
	return f.sessions, nil
}

func (f *fakeBackend) FetchDashboardStats() (types.DashboardStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchStatsCalls++
	if f.statsErr != nil {
		return types.DashboardStats{}, f.statsErr
	}
	return f.stats, nil
}

func (f *fakeBackend) SlugExists(slug string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slugChecks = append(f.slugChecks, slug)
	if f.slugErr != nil {
		return false, f.slugErr
	}
	return f.takenSlugs[slug], nil
}

func (f *fakeBackend) InsertSession(row types.NewSession) (types.CreatedSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return types.CreatedSession{}, f.insertErr
	}
	f.inserted = append(f.inserted, row)
	f.takenSlugs[row.Slug] = true
	f.nextID++
	return types.CreatedSession{ID: fmt.Sprintf("id-%d", f.nextID), Slug: row.Slug}, nil
}

func (f *fakeBackend) GetSessionBySlug(slug string) (types.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lookupErr != nil {
		return types.Session{}, f.lookupErr
	}
	session, ok := f.sessionBySlug[slug]
	if !ok {
		return types.Session{}, fmt.Errorf("%w: no session with slug %q", types.ErrNotFound, slug)
	}
	return session, nil
}

func (f *fakeBackend) ListQuestions(sessionID string) ([]types.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.questions[sessionID], nil
}
