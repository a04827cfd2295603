package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
	"taskboard/internal/patch"
	"taskboard/internal/repository"
)

type MemberHandler struct {
	repo repository.MemberRepositoryInterface
}

func NewMemberHandler(repo repository.MemberRepositoryInterface) *MemberHandler {
	return &MemberHandler{repo: repo}
}

type MemberRequest struct {
	Name      string `json:"name" binding:"required"`
	Role      string `json:"role" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	AvatarURL string `json:"avatarUrl"`
	TeamID    *uint  `json:"teamId"`
}

func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team members"})
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	member, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team member"})
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindError("Invalid team member data", err))
		return
	}

	member := &model.TeamMember{
		Name:      req.Name,
		Role:      req.Role,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
		TeamID:    req.TeamID,
	}

	if err := h.repo.Create(c.Request.Context(), member); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member"})
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	fields, err := patch.Member(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, bindError("Invalid team member data", err))
		return
	}

	member, err := h.repo.Update(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team member"})
		return
	}

	c.JSON(http.StatusOK, member)
}

// Delete leaves assigned tasks pointing at the gone member; readers
// render an unknown assignee.
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team member"})
		return
	}

	c.Status(http.StatusNoContent)
}
