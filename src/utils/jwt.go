package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const devJWTSecret = "zab-portal-dev-secret"

var (
	ErrMissingToken = errors.New("missing token")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// JWT_SECRET อ่านทุกครั้ง เพื่อให้ test ใช้ t.Setenv ได้
func jwtSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte(devJWTSecret)
}

// JWTClaims ออกโดย identity service ของ facility; UserID คือ _id ใน roster
type JWTClaims struct {
	UserID string   `json:"userId"`
	CID    int      `json:"cid"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a 24h session token. Production tokens come from the
// identity service; this is used by tests and local tooling.
func GenerateJWT(userID string, cid int, roles []string) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID: userID,
		CID:    cid,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// ParseJWT verifies an HS256 token. Errors wrap ErrMissingToken,
// ErrTokenExpired or ErrInvalidToken.
func ParseJWT(tokenStr string) (*JWTClaims, error) {
	if tokenStr == "" {
		return nil, ErrMissingToken
	}

	claims := &JWTClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: no userId claim", ErrInvalidToken)
	}
	return claims, nil
}
