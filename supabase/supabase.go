package supabase

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ChrisCoolDev/qalive-app/config"
	"github.com/ChrisCoolDev/qalive-app/types"
	"github.com/golang-jwt/jwt"
	"github.com/supabase-community/supabase-go"
)

// Package-wide connection settings, set once by Init from the parsed
// Config. Per-request clients reuse them with the caller's token.
var (
	Client *supabase.Client

	apiURL string
	apiKey string
)

func Init(cfg *config.Config) {
	apiURL = cfg.SupabaseURL
	apiKey = cfg.SupabaseKey

	if apiURL == "" || apiKey == "" {
		config.Logger.Fatal("SUPABASE_URL or SUPABASE_KEY is missing")
	}

	var err error
	Client, err = supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{})
	if err != nil {
		config.Logger.Fatal("Failed to create Supabase client:", err)
	}
}

// ClientFromRequest builds a Supabase client scoped to the caller's bearer
// token and extracts the calling principal from the JWT claims. The token is
// parsed unverified here; verification is Supabase's job once the token is
// replayed on every query.
func ClientFromRequest(r *http.Request) (*supabase.Client, *types.Principal, error) {
	jwtString, err := bearerToken(r)
	if err != nil {
		return nil, nil, err
	}

	principal, err := PrincipalFromToken(jwtString)
	if err != nil {
		return nil, nil, err
	}

	client, err := supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{
		Headers: map[string]string{
			"Authorization": "Bearer " + jwtString,
		},
	})
	return client, principal, err
}

// PrincipalFromToken reads the sub and email claims out of a Supabase access
// token without verifying the signature.
func PrincipalFromToken(jwtString string) (*types.Principal, error) {
	token, _, err := new(jwt.Parser).ParseUnverified(jwtString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("invalid JWT format")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid JWT claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("missing sub in token")
	}

	principal := &types.Principal{ID: sub}
	if email, ok := claims["email"].(string); ok {
		principal.Email = email
	}
	return principal, nil
}

func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing Authorization header")
	}

	jwtString := strings.TrimPrefix(authHeader, "Bearer ")
	if jwtString == "" || jwtString == authHeader {
		return "", fmt.Errorf("invalid Authorization header")
	}
	return jwtString, nil
}
