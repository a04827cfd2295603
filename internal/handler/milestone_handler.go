package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
	"taskboard/internal/patch"
	"taskboard/internal/repository"
)

type MilestoneHandler struct {
	repo repository.MilestoneRepositoryInterface
}

func NewMilestoneHandler(repo repository.MilestoneRepositoryInterface) *MilestoneHandler {
	return &MilestoneHandler{repo: repo}
}

type MilestoneRequest struct {
	ProjectID *uint            `json:"projectId" binding:"required"`
	Title     string           `json:"title" binding:"required"`
	Date      *model.Timestamp `json:"date" binding:"required"`
	Completed bool             `json:"completed"`
}

func (h *MilestoneHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		milestones []model.Milestone
		err        error
	)
	if raw := c.Query("projectId"); raw != "" {
		projectID, perr := strconv.ParseUint(raw, 10, 32)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid projectId"})
			return
		}
		milestones, err = h.repo.ListByProject(ctx, uint(projectID))
	} else {
		milestones, err = h.repo.List(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch milestones"})
		return
	}

	c.JSON(http.StatusOK, milestones)
}

func (h *MilestoneHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	milestone, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMilestoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch milestone"})
		return
	}

	c.JSON(http.StatusOK, milestone)
}

func (h *MilestoneHandler) Create(c *gin.Context) {
	var req MilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindError("Invalid milestone data", err))
		return
	}

	milestone := &model.Milestone{
		ProjectID: *req.ProjectID,
		Title:     req.Title,
		Date:      *req.Date,
		Completed: req.Completed,
	}

	if err := h.repo.Create(c.Request.Context(), milestone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create milestone"})
		return
	}

	c.JSON(http.StatusCreated, milestone)
}

func (h *MilestoneHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	fields, err := patch.Milestone(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, bindError("Invalid milestone data", err))
		return
	}

	milestone, err := h.repo.Update(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrMilestoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update milestone"})
		return
	}

	c.JSON(http.StatusOK, milestone)
}

func (h *MilestoneHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrMilestoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete milestone"})
		return
	}

	c.Status(http.StatusNoContent)
}
