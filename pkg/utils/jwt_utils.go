package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecretKey signs and verifies tokens. Set once at startup via InitJWT
// from the JWT_SECRET environment variable.
var jwtSecretKey []byte

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// InitJWT configures the signing key. Must be called before any token is
// issued or validated.
func InitJWT(secret string) error {
	if len(secret) < 32 {
		return errors.New("JWT secret must be at least 32 characters")
	}
	jwtSecretKey = []byte(secret)
	return nil
}

// Claims defines the JWT claims structure for staff tokens.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func generateToken(userID, username, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "hotel-pos-backend",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecretKey)
}

// GenerateAccessToken creates a short-lived token for API access.
func GenerateAccessToken(userID, username, role string) (string, error) {
	return generateToken(userID, username, role, AccessTokenTTL)
}

// GenerateRefreshToken creates a long-lived token used only to obtain a
// fresh token pair.
func GenerateRefreshToken(userID, username, role string) (string, error) {
	return generateToken(userID, username, role, RefreshTokenTTL)
}

// ValidateToken parses and verifies a token string, returning its claims.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
