package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ChrisCoolDev/qalive-app/config"
	"github.com/ChrisCoolDev/qalive-app/store"
	"github.com/ChrisCoolDev/qalive-app/supabase"
	"github.com/ChrisCoolDev/qalive-app/types"
)

// DashboardHandler returns one page of the caller's sessions plus the
// dashboard aggregates, both loaded through the session store.
func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	client, principal, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			writeError(w, "Invalid page number", http.StatusBadRequest)
			return
		}
	}

	st := store.NewSessionStore(supabase.NewBackend(client, principal.ID), h.Notifier, h.Cfg.AppOrigin)
	defer st.Close()
	st.SetUser(principal)
	st.SetPage(page)

	if !st.FetchDashboardData() {
		config.Logger.Error("Failed to fetch dashboard data: ", st.ErrorMsg())
		writeJSON(w, http.StatusInternalServerError, types.DashboardResponse{
			Success:      false,
			ErrorMessage: st.ErrorMsg(),
		})
		return
	}

	snap := st.Snapshot()
	writeJSON(w, http.StatusOK, types.DashboardResponse{
		Success:        true,
		Sessions:       snap.Sessions,
		TotalSessions:  snap.TotalSessions,
		TotalQuestions: snap.TotalQuestions,
		ActiveSessions: snap.ActiveSessions,
		Page:           snap.Page,
		PageSize:       store.PageSize,
		TotalPages:     snap.TotalPages,
	})
}

// CreateSessionHandler runs the create-session workflow. The name is taken
// as given; a name without alphanumerics still slugs to a usable value.
func (h *Handler) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Logger.Error("Failed to decode session JSON:", err)
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	client, principal, err := supabase.ClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	st := store.NewSessionStore(supabase.NewBackend(client, principal.ID), h.Notifier, h.Cfg.AppOrigin)
	defer st.Close()
	st.SetUser(principal)
	st.SetSessionName(req.Name)
	st.SetAccessCode(req.AccessCode)

	if !st.CreateSession() {
		config.Logger.Error("Failed to create session: ", st.ErrorMsg())
		writeJSON(w, http.StatusInternalServerError, types.CreateSessionResponse{
			Success:      false,
			ErrorMessage: st.ErrorMsg(),
		})
		return
	}

	id, createdSlug := st.CreatedSession()
	writeJSON(w, http.StatusCreated, types.CreateSessionResponse{
		Success:     true,
		SessionID:   id,
		Slug:        createdSlug,
		QuestionURL: st.SessionQuestionURL(),
		QRCodePath:  st.QRCodePath(),
		Message:     st.SuccessMsg(),
	})
}
