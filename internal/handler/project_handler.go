package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
	"taskboard/internal/patch"
	"taskboard/internal/repository"
)

type ProjectHandler struct {
	repo repository.ProjectRepositoryInterface
}

func NewProjectHandler(repo repository.ProjectRepositoryInterface) *ProjectHandler {
	return &ProjectHandler{repo: repo}
}

type ProjectRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	ClientName  string           `json:"clientName"`
	StartDate   *model.Timestamp `json:"startDate" binding:"required"`
	EndDate     *model.Timestamp `json:"endDate"`
	Status      string           `json:"status" binding:"omitempty,oneof=active completed on-hold cancelled"`
	Progress    *int             `json:"progress" binding:"omitempty,min=0,max=100"`
	TeamID      *uint            `json:"teamId"`
}

// ProjectResponse adds the display-only derived status next to the
// persisted fields.
type ProjectResponse struct {
	model.Project
	DerivedStatus string `json:"derivedStatus"`
}

func toProjectResponse(p model.Project) ProjectResponse {
	return ProjectResponse{Project: p, DerivedStatus: model.DeriveStatus(&p, time.Now())}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, toProjectResponse(project))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	project, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(*project))
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindError("Invalid project data", err))
		return
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		ClientName:  req.ClientName,
		StartDate:   *req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
		TeamID:      req.TeamID,
	}
	if project.Status == "" {
		project.Status = model.ProjectStatusActive
	}
	if req.Progress != nil {
		project.Progress = *req.Progress
	}

	if err := h.repo.Create(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, toProjectResponse(*project))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	fields, err := patch.Project(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, bindError("Invalid project data", err))
		return
	}

	project, err := h.repo.Update(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(*project))
}

// Delete removes the project only. Its tasks, milestones and events
// survive with a dangling projectId.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.Status(http.StatusNoContent)
}
