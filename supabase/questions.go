package supabase

import (
	"encoding/json"
	"fmt"

	"github.com/ChrisCoolDev/qalive-app/types"
	"github.com/supabase-community/postgrest-go"
)

// ListQuestions returns every question submitted to a session, newest first.
func (b *Backend) ListQuestions(sessionID string) ([]types.Question, error) {
	resp, _, err := b.client.From("questions").
		Select("*", "", false).
		Eq("session_id", sessionID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrQueryFailed, err)
	}

	var questions []types.Question
	if err := json.Unmarshal(resp, &questions); err != nil {
		return nil, fmt.Errorf("%w: failed to decode question data: %v", types.ErrQueryFailed, err)
	}

	return questions, nil
}
