package utils

import (
	"fmt"
	"time"

	"alama-backend/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	OwnerID uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	jwt.RegisteredClaims
}

// The literal fallbacks mirror the deployed service's defaults; any real
// deployment must override them via JWT_SECRET / JWT_REFRESH_SECRET.
func accessSecret() string {
	return config.GetEnv("JWT_SECRET", "secret125")
}

func refreshSecret() string {
	return config.GetEnv("JWT_REFRESH_SECRET", "secret2125")
}

// GenerateToken issues a short-lived access token carrying the business
// owner's id and email.
func GenerateToken(ownerID uuid.UUID, email string) (string, error) {
	claims := Claims{
		OwnerID: ownerID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "alama-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(accessSecret()))
}

// GenerateRefreshToken issues a longer-lived refresh token for the same
// identity, signed with the refresh secret.
func GenerateRefreshToken(ownerID uuid.UUID, email string) (string, error) {
	claims := Claims{
		OwnerID: ownerID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "alama-refresh",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(refreshSecret()))
}

// ValidateRefreshToken verifies a refresh token's signature and expiry and
// returns its claims.
func ValidateRefreshToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(refreshSecret()), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
