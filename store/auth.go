package store

import (
	"sync"

	"github.com/ChrisCoolDev/qalive-app/authstate"
	"github.com/ChrisCoolDev/qalive-app/types"
)

// AuthStore wraps sign-in and sign-out and mirrors the current principal
// from the auth-state feed.
type AuthStore struct {
	mu       sync.Mutex
	auth     AuthBackend
	notifier *authstate.Notifier

	unsubscribe func()

	user       *types.Principal
	isLoggedIn bool
	loading    bool
	errorMsg   string
}

func NewAuthStore(auth AuthBackend, notifier *authstate.Notifier) *AuthStore {
	s := &AuthStore{auth: auth, notifier: notifier}
	if notifier != nil {
		s.unsubscribe = notifier.Subscribe(func(_ authstate.Event, p *types.Principal) {
			s.mu.Lock()
			s.user = p
			s.isLoggedIn = p != nil
			s.loading = false
			s.mu.Unlock()
		})
	}
	return s
}

func (s *AuthStore) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// LoginWithGoogle starts the external OAuth flow and returns the provider
// authorization URL the browser must be sent to. On failure the error is
// recorded and loading cleared; on success loading stays set until the
// auth-state feed reports the result of the redirect.
func (s *AuthStore) LoginWithGoogle(redirectTo string) (string, bool) {
	s.mu.Lock()
	s.loading = true
	s.errorMsg = ""
	s.mu.Unlock()

	url, err := s.auth.SignInWithProvider("google", redirectTo)
	if err != nil {
		s.mu.Lock()
		s.errorMsg = err.Error()
		s.loading = false
		s.mu.Unlock()
		return "", false
	}

	return url, true
}

// Logout signs out and clears local state. There is no failure path: a
// sign-out that errors backend-side still signs the user out locally.
func (s *AuthStore) Logout() bool {
	_ = s.auth.SignOut()

	s.mu.Lock()
	s.user = nil
	s.isLoggedIn = false
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Notify(authstate.SignedOut, nil)
	}
	return true
}

func (s *AuthStore) User() *types.Principal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *AuthStore) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoggedIn
}

func (s *AuthStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *AuthStore) ErrorMsg() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorMsg
}
