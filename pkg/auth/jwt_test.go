package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ident, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), ident.ID)
	assert.Equal(t, "admin", ident.Role)
	assert.True(t, ident.IsAdmin())
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := ValidateToken(tok)
		assert.ErrorIs(t, err, ErrBadToken, "token %q", tok)
	}
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	claims := Claims{
		UserID: 7,
		Role:   "customer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("attacker-key"))
	require.NoError(t, err)

	_, err = ValidateToken(forged)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	claims := Claims{
		UserID: 7,
		Role:   "customer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
	require.NoError(t, err)

	_, err = ValidateToken(expired)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestValidateTokenRejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{UserID: 7, Role: "admin"}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(unsigned)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}
