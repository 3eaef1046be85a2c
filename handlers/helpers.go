package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ChrisCoolDev/qalive-app/authstate"
	"github.com/ChrisCoolDev/qalive-app/config"
	"github.com/ChrisCoolDev/qalive-app/types"
)

// Handler bundles the dependencies every endpoint needs; one instance is
// built in main and shared across routes.
type Handler struct {
	Notifier *authstate.Notifier
	Cfg      *config.Config
}

func New(notifier *authstate.Notifier, cfg *config.Config) *Handler {
	return &Handler{Notifier: notifier, Cfg: cfg}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, types.ErrorResponse{
		Success:      false,
		ErrorMessage: message,
	})
}
