package types

import "errors"

// Failure classes shared between the supabase layer and the stores.
// Wrap with fmt.Errorf("%w: ...") and test with errors.Is.
var (
	ErrNotAuthenticated = errors.New("you must be signed in")
	ErrQueryFailed      = errors.New("query failed")
	ErrInsertFailed     = errors.New("insert failed")
	ErrNotFound         = errors.New("not found")
)

// ErrorResponse is the generic failure envelope for handlers that have no
// richer response type.
type ErrorResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error,omitempty"`
}
