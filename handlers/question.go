package handlers

import (
	"net/http"

	"github.com/ChrisCoolDev/qalive-app/config"
	"github.com/ChrisCoolDev/qalive-app/store"
	"github.com/ChrisCoolDev/qalive-app/supabase"
	"github.com/ChrisCoolDev/qalive-app/types"
)

// QuestionsHandler resolves a session by slug and returns its questions,
// newest first.
func (h *Handler) QuestionsHandler(w http.ResponseWriter, r *http.Request) {
	sessionSlug := r.PathValue("slug")
	if sessionSlug == "" {
		writeError(w, "Missing session slug", http.StatusBadRequest)
		return
	}

	client, principal, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	qs := store.NewQuestionStore(supabase.NewBackend(client, principal.ID))
	if !qs.FetchQuestions(sessionSlug) {
		status := http.StatusInternalServerError
		if qs.NotFound() {
			status = http.StatusNotFound
		}
		config.Logger.Error("Failed to fetch questions: ", qs.ErrorMsg())
		writeJSON(w, status, types.QuestionsResponse{
			Success:      false,
			ErrorMessage: qs.ErrorMsg(),
		})
		return
	}

	writeJSON(w, http.StatusOK, types.QuestionsResponse{
		Success:   true,
		Session:   qs.CurrentSession(),
		Questions: qs.Questions(),
	})
}
