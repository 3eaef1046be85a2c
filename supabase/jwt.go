package supabase

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

// GenerateTestJWT mints an HS256 access token shaped like Supabase's, used
// by the test suite to exercise the request-scoped client path.
func GenerateTestJWT(userID, email string) (string, error) {
	secret := os.Getenv("SUPABASE_JWT_SECRET")

	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"aud":   "authenticated",
		"role":  "authenticated",
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
