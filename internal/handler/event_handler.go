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

type EventHandler struct {
	repo repository.EventRepositoryInterface
}

func NewEventHandler(repo repository.EventRepositoryInterface) *EventHandler {
	return &EventHandler{repo: repo}
}

type EventRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Start       *model.Timestamp `json:"start" binding:"required"`
	End         *model.Timestamp `json:"end"`
	AllDay      bool             `json:"allDay"`
	ProjectID   *uint            `json:"projectId"`
	Type        string           `json:"type"`
	Color       string           `json:"color"`
}

func (h *EventHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		events []model.Event
		err    error
	)
	if raw := c.Query("projectId"); raw != "" {
		projectID, perr := strconv.ParseUint(raw, 10, 32)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid projectId"})
			return
		}
		events, err = h.repo.ListByProject(ctx, uint(projectID))
	} else {
		events, err = h.repo.List(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	event, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindError("Invalid event data", err))
		return
	}

	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Start:       *req.Start,
		End:         req.End,
		AllDay:      req.AllDay,
		ProjectID:   req.ProjectID,
		Type:        req.Type,
		Color:       req.Color,
	}
	if event.Type == "" {
		event.Type = model.EventTypeMeeting
	}
	if event.Color == "" {
		event.Color = model.EventColorDefault
	}

	if err := h.repo.Create(c.Request.Context(), event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	fields, err := patch.Event(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, bindError("Invalid event data", err))
		return
	}

	event, err := h.repo.Update(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.Status(http.StatusNoContent)
}
