package services

import (
	"fmt"
	"time"

	"fittrack/internal/apperrors"

	"github.com/dgrijalva/jwt-go"
)

// TokenService issues and verifies stateless bearer tokens carrying a
// user identity claim.
type TokenService struct {
	secret []byte
	ttl    time.Duration // 0 disables the expiry claim
}

// NewTokenService creates a new TokenService. The caller is responsible for
// ensuring the secret is present; an empty secret is a startup error, not a
// per-request one.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue produces a signed token encoding the user's identity. When the
// service is configured with a TTL, the token also carries exp/iat claims.
func (s *TokenService) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
	}
	if s.ttl > 0 {
		claims["iat"] = time.Now().Unix()
		claims["exp"] = time.Now().Add(s.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify parses and validates a token, returning the user id it encodes.
// Malformed tokens, bad signatures, and expired claims all produce the same
// auth error so callers cannot distinguish the failure mode.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", apperrors.Auth("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", apperrors.Auth("Invalid or expired token")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", apperrors.Auth("Invalid or expired token")
	}
	return userID, nil
}
