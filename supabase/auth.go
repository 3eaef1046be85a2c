package supabase

import (
	"fmt"
	"net/http"

	"github.com/ChrisCoolDev/qalive-app/types"
	gotruetypes "github.com/supabase-community/auth-go/types"
	"github.com/supabase-community/supabase-go"
)

// AuthClient adapts the GoTrue auth API for the auth store. The token is the
// caller's access token, needed for sign-out; it may be empty for sign-in.
type AuthClient struct {
	client *supabase.Client
	token  string
}

func NewAuthClient(client *supabase.Client, token string) *AuthClient {
	return &AuthClient{client: client, token: token}
}

// AuthClientFromRequest builds an AuthClient carrying the caller's access
// token, for operations like sign-out that act on the caller's own session.
func AuthClientFromRequest(r *http.Request) (*AuthClient, *types.Principal, error) {
	token, err := bearerToken(r)
	if err != nil {
		return nil, nil, err
	}

	principal, err := PrincipalFromToken(token)
	if err != nil {
		return nil, nil, err
	}

	client, err := supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, nil, err
	}
	return NewAuthClient(client, token), principal, nil
}

// SignInWithProvider asks GoTrue for the external OAuth authorization URL.
// The actual redirect happens in the browser; our part ends at the URL.
func (a *AuthClient) SignInWithProvider(provider, redirectTo string) (string, error) {
	resp, err := a.client.Auth.Authorize(gotruetypes.AuthorizeRequest{
		Provider:   gotruetypes.Provider(provider),
		RedirectTo: redirectTo,
	})
	if err != nil {
		return "", fmt.Errorf("failed to start %s sign-in: %w", provider, err)
	}
	return resp.AuthorizationURL, nil
}

// SignOut revokes the caller's session with GoTrue.
func (a *AuthClient) SignOut() error {
	if a.token == "" {
		return fmt.Errorf("no access token to sign out")
	}
	return a.client.Auth.WithToken(a.token).Logout()
}
