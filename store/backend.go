// Package store holds the stateful orchestrators behind the dashboard,
// question and auth views. Each store is an explicit object built with its
// dependencies; actions record failures as user-facing messages and return a
// bool instead of leaking errors to the caller.
package store

import "github.com/ChrisCoolDev/qalive-app/types"

// Backend is the row-level surface the session and question stores need.
// *supabase.Backend is the production implementation.
type Backend interface {
	FetchSessions(page, pageSize int) ([]types.Session, error)
	FetchDashboardStats() (types.DashboardStats, error)
	SlugExists(slug string) (bool, error)
	InsertSession(row types.NewSession) (types.CreatedSession, error)
	GetSessionBySlug(slug string) (types.Session, error)
	ListQuestions(sessionID string) ([]types.Question, error)
}

// AuthBackend is the auth surface behind the auth store.
type AuthBackend interface {
	SignInWithProvider(provider, redirectTo string) (url string, err error)
	SignOut() error
}
