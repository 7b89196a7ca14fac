// internals/features/users/auth/service/token_service.go
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"kampusku_backend/internals/configs"
)

const AccessTokenTTL = 2 * time.Hour

// IssueAccessToken membuat JWT access token dengan klaim standar:
// sub (user id), role, user_name, exp, iat.
func IssueAccessToken(userID uuid.UUID, userName, role string) (string, time.Time, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", time.Time{}, fmt.Errorf("JWT_SECRET belum diset")
	}

	now := time.Now().UTC()
	exp := now.Add(AccessTokenTTL)

	claims := jwt.MapClaims{
		"sub":       userID.String(),
		"user_name": userName,
		"role":      role,
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}
