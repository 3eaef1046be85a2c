package routes

import (
	"net/http"

	"github.com/ChrisCoolDev/qalive-app/handlers"
)

// RegisterSessionRoutes registers the dashboard and session lifecycle routes
func RegisterSessionRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("GET /dashboard", h.DashboardHandler)
	mux.HandleFunc("POST /sessions/create", h.CreateSessionHandler)
	mux.HandleFunc("GET /sessions/{slug}/qrcode", h.QRCodeHandler)
}
