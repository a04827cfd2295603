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

type TaskHandler struct {
	repo repository.TaskRepositoryInterface
}

func NewTaskHandler(repo repository.TaskRepositoryInterface) *TaskHandler {
	return &TaskHandler{repo: repo}
}

type TaskRequest struct {
	Title        string           `json:"title" binding:"required"`
	Description  string           `json:"description"`
	ProjectID    *uint            `json:"projectId" binding:"required"`
	Status       string           `json:"status" binding:"omitempty,oneof=todo in-progress review completed"`
	Priority     string           `json:"priority" binding:"omitempty,oneof=low medium high"`
	AssigneeID   *uint            `json:"assigneeId"`
	DueDate      *model.Timestamp `json:"dueDate"`
	Completed    bool             `json:"completed"`
	Column       string           `json:"column" binding:"omitempty,oneof=todo in-progress review completed"`
	Order        int              `json:"order"`
	TimeSpent    int              `json:"timeSpent" binding:"omitempty,min=0"`
	TimeEstimate *int             `json:"timeEstimate"`
}

type TaskMoveRequest struct {
	Column string `json:"column"`
	Order  *int   `json:"order"`
}

func (h *TaskHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		tasks []model.Task
		err   error
	)
	if raw := c.Query("projectId"); raw != "" {
		projectID, perr := strconv.ParseUint(raw, 10, 32)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid projectId"})
			return
		}
		tasks, err = h.repo.ListByProject(ctx, uint(projectID))
	} else {
		tasks, err = h.repo.List(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	task, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindError("Invalid task data", err))
		return
	}

	task := &model.Task{
		Title:        req.Title,
		Description:  req.Description,
		ProjectID:    *req.ProjectID,
		Status:       req.Status,
		Priority:     req.Priority,
		AssigneeID:   req.AssigneeID,
		DueDate:      req.DueDate,
		Completed:    req.Completed,
		Column:       req.Column,
		Order:        req.Order,
		TimeSpent:    req.TimeSpent,
		TimeEstimate: req.TimeEstimate,
	}
	if task.Status == "" {
		task.Status = model.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if task.Column == "" {
		task.Column = model.ColumnTodo
	}

	if err := h.repo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	fields, err := patch.Task(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, bindError("Invalid task data", err))
		return
	}

	task, err := h.repo.Update(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Move repositions a card after a drag. Drag-end handlers sometimes
// report a drop-target id instead of a lane name, so an unrecognized
// column falls back to the task's current lane instead of corrupting it.
func (h *TaskHandler) Move(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req TaskMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	column := req.Column
	if !model.ValidColumn(column) {
		current, err := h.repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
			return
		}
		column = current.Column
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	task, err := h.repo.Move(c.Request.Context(), id, column, order)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move task"})
		return
	}

	c.JSON(http.StatusOK, task)
}
