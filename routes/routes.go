package routes

import (
	"net/http"

	"github.com/ChrisCoolDev/qalive-app/handlers"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux, h *handlers.Handler) {
	RegisterSessionRoutes(mux, h)
	RegisterQuestionRoutes(mux, h)
	RegisterAuthRoutes(mux, h)
}
