package types

// Principal is the authenticated identity behind a backend credential.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

type LoginResponse struct {
	Success      bool   `json:"success"`
	URL          string `json:"url,omitempty"` // provider authorization URL
	ErrorMessage string `json:"error,omitempty"`
}

type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type AuthSessionResponse struct {
	Success      bool       `json:"success"`
	User         *Principal `json:"user,omitempty"`
	LoggedIn     bool       `json:"logged_in"`
	ErrorMessage string     `json:"error,omitempty"`
}
