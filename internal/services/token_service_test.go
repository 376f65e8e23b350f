package services_test

import (
	"testing"
	"time"

	"fittrack/internal/apperrors"
	"fittrack/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret", 24*time.Hour)

	tokenString, err := tokens.Issue("user-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	userID, err := tokens.Verify(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenService_VerifyMalformed(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret", 24*time.Hour)

	_, err := tokens.Verify("not.a.token")
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "Invalid or expired token")
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret", 24*time.Hour)
	other := services.NewTokenService("another_secret", 24*time.Hour)

	tokenString, err := other.Issue("user-123")
	assert.NoError(t, err)

	_, err = tokens.Verify(tokenString)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(err))
}

func TestTokenService_VerifyExpired(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	expiredString, err := expired.SignedString([]byte("test_jwt_secret"))
	assert.NoError(t, err)

	_, err = tokens.Verify(expiredString)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(err))
}

func TestTokenService_NoExpiryWhenTTLZero(t *testing.T) {
	// Parity mode: TTL 0 issues bearer-forever tokens without an exp claim.
	tokens := services.NewTokenService("test_jwt_secret", 0)

	tokenString, err := tokens.Issue("user-123")
	assert.NoError(t, err)

	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test_jwt_secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	_, hasExp := claims["exp"]
	assert.False(t, hasExp)

	userID, err := tokens.Verify(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenService_VerifyMissingUserClaim(t *testing.T) {
	tokens := services.NewTokenService("test_jwt_secret", time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte("test_jwt_secret"))
	assert.NoError(t, err)

	_, err = tokens.Verify(tokenString)
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindAuth, apperrors.KindOf(err))
}
