package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

type APIKeyHandler struct {
	repo repository.APIKeyRepositoryInterface
}

func NewAPIKeyHandler(repo repository.APIKeyRepositoryInterface) *APIKeyHandler {
	return &APIKeyHandler{repo: repo}
}

type APIKeyRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *APIKeyHandler) Create(c *gin.Context) {
	var req APIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindError("Invalid API key data", err))
		return
	}

	key := &model.APIKey{
		Name: req.Name,
		Key:  uuid.NewString(),
	}
	if err := h.repo.Create(c.Request.Context(), key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create API key"})
		return
	}

	c.JSON(http.StatusCreated, key)
}

func (h *APIKeyHandler) List(c *gin.Context) {
	keys, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch API keys"})
		return
	}
	c.JSON(http.StatusOK, keys)
}

// Validate reports whether a key exists without requiring auth; other
// services use it as a cheap pre-flight check.
func (h *APIKeyHandler) Validate(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key query parameter is required"})
		return
	}

	if _, err := h.repo.FindByKey(c.Request.Context(), key); err != nil {
		if errors.Is(err, repository.ErrAPIKeyNotFound) {
			c.JSON(http.StatusOK, gin.H{"valid": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate API key"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}
