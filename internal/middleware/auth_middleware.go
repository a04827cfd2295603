package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard/internal/auth"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// Context keys set by Auth.
const (
	UserIDKey     = "userID"
	APIKeyNameKey = "apiKeyName"
)

// APIKeyLookup resolves X-API-Key header values. Satisfied by the API
// key repositories.
type APIKeyLookup interface {
	FindByKey(ctx context.Context, key string) (*model.APIKey, error)
}

// Auth accepts either a Bearer JWT (interactive clients) or an X-API-Key
// header (service-to-service callers) and aborts with 401 otherwise.
func Auth(jwtSecret string, keys APIKeyLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey := c.GetHeader("X-API-Key"); apiKey != "" && keys != nil {
			key, err := keys.FindByKey(c.Request.Context(), apiKey)
			if err != nil {
				if errors.Is(err, repository.ErrAPIKeyNotFound) {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify API key"})
				return
			}
			c.Set(APIKeyNameKey, key.Name)
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		userID, err := auth.ParseToken(parts[1], jwtSecret)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidClaims) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID in token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
