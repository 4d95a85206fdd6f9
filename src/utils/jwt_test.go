package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	tok, err := GenerateJWT("65a1f0c2e4b0a1b2c3d4e5f6", 1234567, []string{"atm"})
	require.NoError(t, err)

	claims, err := ParseJWT(tok)
	require.NoError(t, err)
	assert.Equal(t, "65a1f0c2e4b0a1b2c3d4e5f6", claims.UserID)
	assert.Equal(t, 1234567, claims.CID)
	assert.Equal(t, []string{"atm"}, claims.Roles)
}

func TestParseJWTErrors(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	_, err := ParseJWT("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = ParseJWT("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	tok, err := GenerateJWT("u1", 1, nil)
	require.NoError(t, err)
	t.Setenv("JWT_SECRET", "rotated")
	_, err = ParseJWT(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWTExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	claims := JWTClaims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = ParseJWT(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseJWTRejectsOtherAlgorithms(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	claims := JWTClaims{
		UserID:           "u1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = ParseJWT(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
