package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ChrisCoolDev/qalive-app/authstate"
	"github.com/ChrisCoolDev/qalive-app/config"
	"github.com/ChrisCoolDev/qalive-app/supabase"
	"github.com/ChrisCoolDev/qalive-app/types"
)

func testHandler() *Handler {
	return New(authstate.NewNotifier(), &config.Config{
		AppOrigin:     "https://app.qalive.ink",
		OAuthRedirect: "https://app.qalive.ink",
	})
}

func TestDashboardHandler_Unauthorized(t *testing.T) {
	h := testHandler()
	r := httptest.NewRequest("GET", "/dashboard", nil)
	w := httptest.NewRecorder()

	h.DashboardHandler(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var resp types.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected success=false")
	}
}

func TestDashboardHandler_BadPage(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "test-secret")
	supabase.Init(&config.Config{
		SupabaseURL: "https://project.supabase.co",
		SupabaseKey: "anon-key",
	})

	token, err := supabase.GenerateTestJWT("user-1", "u@example.com")
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	h := testHandler()
	r := httptest.NewRequest("GET", "/dashboard?page=zero", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	h.DashboardHandler(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateSessionHandler_InvalidJSON(t *testing.T) {
	h := testHandler()
	r := httptest.NewRequest("POST", "/sessions/create", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	h.CreateSessionHandler(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateSessionHandler_Unauthorized(t *testing.T) {
	h := testHandler()
	body, _ := json.Marshal(types.CreateSessionRequest{Name: "Team Standup"})
	r := httptest.NewRequest("POST", "/sessions/create", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.CreateSessionHandler(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestQRCodeHandler_RendersPNG(t *testing.T) {
	h := testHandler()
	r := httptest.NewRequest("GET", "/sessions/team-standup/qrcode", nil)
	r.SetPathValue("slug", "team-standup")
	w := httptest.NewRecorder()

	h.QRCodeHandler(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}
	png := w.Body.Bytes()
	if len(png) < 8 || png[1] != 'P' || png[2] != 'N' || png[3] != 'G' {
		t.Fatalf("response does not look like a PNG (%d bytes)", len(png))
	}
}

func TestQRCodeHandler_MissingSlug(t *testing.T) {
	h := testHandler()
	r := httptest.NewRequest("GET", "/sessions//qrcode", nil)
	w := httptest.NewRecorder()

	h.QRCodeHandler(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAuthSessionHandler_NoToken(t *testing.T) {
	h := testHandler()
	r := httptest.NewRequest("GET", "/auth/session", nil)
	w := httptest.NewRecorder()

	h.AuthSessionHandler(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp types.AuthSessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if !resp.Success || resp.LoggedIn || resp.User != nil {
		t.Fatalf("expected an anonymous session report, got %+v", resp)
	}
}
