package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/verdano-shop/storefront-api/models"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// sessionTTL matches the 30-day session the storefront issues.
const sessionTTL = 30 * 24 * time.Hour

// IssueToken signs a session token for a user. isNewUser marks a first
// Google sign-in so the client can show first-login messaging.
func IssueToken(userID string, role models.Role, isNewUser bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     userID,
		"role":        string(role),
		"is_new_user": isNewUser,
		"exp":         time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func cookieMaxAge() int {
	return int(sessionTTL / time.Second)
}
