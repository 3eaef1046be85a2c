package routes

import (
	"net/http"

	"github.com/ChrisCoolDev/qalive-app/handlers"
)

// RegisterQuestionRoutes registers the question view routes
func RegisterQuestionRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("GET /sessions/{slug}/questions", h.QuestionsHandler)
}
