package utils

import (
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the identity-provider token claims we care about.
// Tokens are issued by the external identity provider; we only verify the
// shared-secret signature and read the subject as the session key.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// ValidateToken reads JWT_SECRET on every call, so a secret that only
// becomes visible after the .env file is loaded still takes effect.
func ValidateToken(tokenString string) (*SessionClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, jwt.ErrInvalidKey
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, jwt.ErrTokenInvalidSubject
	}
	return claims, nil
}
