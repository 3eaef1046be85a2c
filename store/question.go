package store

import (
	"errors"
	"sync"

	"github.com/ChrisCoolDev/qalive-app/types"
)

// QuestionStore owns the currently viewed session and its questions.
type QuestionStore struct {
	mu      sync.Mutex
	backend Backend

	currentSession *types.Session
	questions      []types.Question
	loading        bool
	errorMsg       string
	notFound       bool
}

func NewQuestionStore(backend Backend) *QuestionStore {
	return &QuestionStore{backend: backend, loading: true}
}

// FetchQuestions resolves the session behind a slug and loads its questions,
// newest first. Any failure records a message and leaves the previous
// questions in place; loading is cleared on every path.
func (q *QuestionStore) FetchQuestions(sessionSlug string) bool {
	q.mu.Lock()
	q.loading = true
	q.errorMsg = ""
	q.notFound = false
	q.mu.Unlock()

	defer func() {
		q.mu.Lock()
		q.loading = false
		q.mu.Unlock()
	}()

	session, err := q.backend.GetSessionBySlug(sessionSlug)
	if err != nil {
		msg := err.Error()
		missing := errors.Is(err, types.ErrNotFound)
		if missing {
			msg = "Session not found."
		}
		q.mu.Lock()
		q.errorMsg = msg
		q.notFound = missing
		q.mu.Unlock()
		return false
	}

	q.mu.Lock()
	q.currentSession = &session
	q.mu.Unlock()

	questions, err := q.backend.ListQuestions(session.ID)
	if err != nil {
		q.mu.Lock()
		q.errorMsg = err.Error()
		q.mu.Unlock()
		return false
	}

	q.mu.Lock()
	q.questions = questions
	q.mu.Unlock()
	return true
}

func (q *QuestionStore) CurrentSession() *types.Session {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.currentSession
}

func (q *QuestionStore) Questions() []types.Question {
	q.mu.Lock()
	defer q.mu.Unlock()
	questions := make([]types.Question, len(q.questions))
	copy(questions, q.questions)
	return questions
}

func (q *QuestionStore) Loading() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.loading
}

func (q *QuestionStore) ErrorMsg() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.errorMsg
}

// NotFound reports whether the last fetch failed because no session holds
// the requested slug, as opposed to a query failure.
func (q *QuestionStore) NotFound() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.notFound
}
