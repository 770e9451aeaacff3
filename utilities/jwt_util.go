package utilities

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by the auth provider's HS256 access
// tokens. Subject is the provider's user id.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ValidateSessionToken checks a provider-issued access token against the
// provider's JWT secret. This only shortcuts a network round-trip; the secret
// and the token format are the provider's, not ours.
func ValidateSessionToken(tokenStr string, secret []byte) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, errors.New("invalid or malformed token")
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.New("token has expired")
	}

	return claims, nil
}
