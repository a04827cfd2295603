package auth_test

import (
	"testing"
	"time"

	"taskboard/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := auth.GenerateToken(42, testSecret, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := auth.ParseToken(token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseToken_InvalidToken(t *testing.T) {
	_, err := auth.ParseToken("invalid-token", testSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken(42, "some-other-secret", time.Hour)
	assert.NoError(t, err)

	_, err = auth.ParseToken(token, testSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_ExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-1 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	expiredToken, _ := token.SignedString([]byte(testSecret))

	_, err := auth.ParseToken(expiredToken, testSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_MissingUserID(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenWithoutUserID, _ := token.SignedString([]byte(testSecret))

	_, err := auth.ParseToken(tokenWithoutUserID, testSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidClaims)
}

func TestParseToken_NonNumericUserID(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": "not-a-number",
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	badToken, _ := token.SignedString([]byte(testSecret))

	_, err := auth.ParseToken(badToken, testSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidClaims)
}
