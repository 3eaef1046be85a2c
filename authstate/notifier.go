// Package authstate is the process-wide auth-state change feed. Stores
// subscribe once at construction and unsubscribe at teardown; handlers
// publish on sign-in and sign-out.
package authstate

import (
	"sync"

	"github.com/ChrisCoolDev/qalive-app/types"
)

type Event string

const (
	SignedIn       Event = "SIGNED_IN"
	SignedOut      Event = "SIGNED_OUT"
	TokenRefreshed Event = "TOKEN_REFRESHED"
)

// Func receives every state change. principal is nil on sign-out.
type Func func(event Event, principal *types.Principal)

type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]Func
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]Func)}
}

// Subscribe registers fn and returns its unsubscribe function. Unsubscribing
// twice is harmless.
func (n *Notifier) Subscribe(fn Func) (unsubscribe func()) {
	n.mu.Lock()
	id := n.next
	n.next++
	n.subs[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// Notify fans the change out to every subscriber, synchronously and in no
// particular order.
func (n *Notifier) Notify(event Event, principal *types.Principal) {
	n.mu.Lock()
	fns := make([]Func, 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(event, principal)
	}
}
