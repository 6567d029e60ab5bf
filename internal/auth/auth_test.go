package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret-key"

	token, err := GenerateToken(secret, "session-1", SessionTTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestGenerateTokenEmptySession(t *testing.T) {
	_, err := GenerateToken("secret", "", SessionTTL)
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret1", "session-1", SessionTTL)

	_, err := ValidateToken("secret2", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenInvalid(t *testing.T) {
	_, err := ValidateToken("secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken("secret", "session-1", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		ID:        "session-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpiry(t *testing.T) {
	token, _ := GenerateToken("test", "session-1", SessionTTL)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, &Claims{})
	require.NoError(t, err)
	claims := parsed.Claims.(*Claims)

	diff := time.Until(claims.ExpiresAt.Time) - SessionTTL
	assert.Less(t, diff.Abs(), 5*time.Second)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, "admin123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash")
	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "admin124"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPasswordIsSalted(t *testing.T) {
	h1, _ := HashPassword("same")
	h2, _ := HashPassword("same")
	assert.NotEqual(t, h1, h2)
}

func TestBurnCheckAlwaysFails(t *testing.T) {
	assert.False(t, BurnCheck("lostfound-dummy-password"))
	assert.False(t, BurnCheck("anything"))
}
