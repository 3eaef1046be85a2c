package routes

import (
	"net/http"

	"github.com/ChrisCoolDev/qalive-app/handlers"
)

// RegisterAuthRoutes registers the sign-in/sign-out routes
func RegisterAuthRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("POST /auth/login/google", h.GoogleLoginHandler)
	mux.HandleFunc("POST /auth/logout", h.LogoutHandler)
	mux.HandleFunc("GET /auth/session", h.AuthSessionHandler)
}
