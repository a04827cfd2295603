package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/repository/memstore"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const jwtSecret = "test-secret-key"

func setupRouter(keys middleware.APIKeyLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()

	protected := r.Group("/protected")
	protected.Use(middleware.Auth(jwtSecret, keys))

	protected.GET("/resource", func(c *gin.Context) {
		userID, _ := c.Get(middleware.UserIDKey)
		keyName, _ := c.Get(middleware.APIKeyNameKey)
		c.JSON(http.StatusOK, gin.H{
			"message":  "Access granted",
			"user_id":  userID,
			"key_name": keyName,
		})
	})

	return r
}

func TestAuth_ValidToken(t *testing.T) {
	// Arrange
	router := setupRouter(nil)
	token, err := auth.GenerateToken(42, jwtSecret, time.Hour)
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Access granted")
	assert.Contains(t, resp.Body.String(), `"user_id":42`)
}

func TestAuth_NoAuthHeader(t *testing.T) {
	// Arrange
	router := setupRouter(nil)
	req, _ := http.NewRequest("GET", "/protected/resource", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Authorization header is required")
}

func TestAuth_InvalidAuthFormat(t *testing.T) {
	// Arrange
	router := setupRouter(nil)
	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "InvalidFormat token123")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Authorization header format must be Bearer {token}")
}

func TestAuth_InvalidToken(t *testing.T) {
	// Arrange
	router := setupRouter(nil)
	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid or expired token")
}

func TestAuth_TokenWithInvalidUserID(t *testing.T) {
	// Arrange
	router := setupRouter(nil)

	claims := jwt.MapClaims{
		"user_id": "not-a-number",
		"exp":     jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(jwtSecret))

	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid user ID in token")
}

func TestAuth_ValidAPIKey(t *testing.T) {
	// Arrange
	store := memstore.New().APIKeys()
	err := store.Create(context.Background(), &model.APIKey{Name: "ci", Key: "service-key"})
	assert.NoError(t, err)

	router := setupRouter(store)
	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("X-API-Key", "service-key")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"key_name":"ci"`)
}

func TestAuth_UnknownAPIKey(t *testing.T) {
	// Arrange
	router := setupRouter(memstore.New().APIKeys())
	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("X-API-Key", "who-dis")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid API key")
}
