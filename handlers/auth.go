package handlers

import (
	"net/http"

	"github.com/ChrisCoolDev/qalive-app/authstate"
	"github.com/ChrisCoolDev/qalive-app/config"
	"github.com/ChrisCoolDev/qalive-app/store"
	"github.com/ChrisCoolDev/qalive-app/supabase"
	"github.com/ChrisCoolDev/qalive-app/types"
)

// GoogleLoginHandler starts the Google OAuth flow and hands the browser the
// provider authorization URL. The anon client is enough here; there is no
// caller token yet.
func (h *Handler) GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	st := store.NewAuthStore(supabase.NewAuthClient(supabase.Client, ""), h.Notifier)
	defer st.Close()

	url, ok := st.LoginWithGoogle(h.Cfg.OAuthRedirect)
	if !ok {
		config.Logger.Error("Failed to start Google sign-in: ", st.ErrorMsg())
		writeJSON(w, http.StatusBadGateway, types.LoginResponse{
			Success:      false,
			ErrorMessage: st.ErrorMsg(),
		})
		return
	}

	writeJSON(w, http.StatusOK, types.LoginResponse{
		Success: true,
		URL:     url,
	})
}

// LogoutHandler revokes the caller's session and broadcasts the sign-out.
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	auth, _, err := supabase.AuthClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to read caller token:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	st := store.NewAuthStore(auth, h.Notifier)
	defer st.Close()
	st.Logout()

	writeJSON(w, http.StatusOK, types.LogoutResponse{
		Success: true,
		Message: "Signed out",
	})
}

// AuthSessionHandler reports the current principal. An absent or invalid
// token is not an error: it means nobody is signed in.
func (h *Handler) AuthSessionHandler(w http.ResponseWriter, r *http.Request) {
	_, principal, err := supabase.ClientFromRequest(r)
	if err != nil {
		writeJSON(w, http.StatusOK, types.AuthSessionResponse{
			Success:  true,
			LoggedIn: false,
		})
		return
	}

	h.Notifier.Notify(authstate.TokenRefreshed, principal)
	writeJSON(w, http.StatusOK, types.AuthSessionResponse{
		Success:  true,
		User:     principal,
		LoggedIn: true,
	})
}
