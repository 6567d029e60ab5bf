package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is how long an admin session stays valid.
const SessionTTL = 24 * time.Hour

// ErrInvalidToken is returned for cookies that fail signature or expiry checks.
var ErrInvalidToken = errors.New("invalid session token")

// Claims is the signed content of the session cookie. The session ID travels
// as the JWT ID; the authoritative state lives in the session store.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs a cookie value that refers to the given session.
func GenerateToken(secret, sessionID string, ttl time.Duration) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("empty session id")
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies a cookie value and returns the session ID it carries.
func ValidateToken(secret, tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return "", ErrInvalidToken
	}

	return claims.ID, nil
}
