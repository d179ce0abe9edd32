package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var sessionSecret = []byte(os.Getenv("SESSION_SECRET"))

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "babylog_session"

const sessionLifetime = 7 * 24 * time.Hour

// SetSessionSecret overrides the signing key loaded from the environment.
func SetSessionSecret(secret []byte) {
	sessionSecret = secret
}

type SessionClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

func CreateSessionToken(userID uint) (string, error) {
	claims := &SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret)
}

// ValidateSessionToken returns the numeric user ID carried by the token.
func ValidateSessionToken(tokenString string) (uint, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return sessionSecret, nil
	})

	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
