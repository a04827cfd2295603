package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/repository"
)

type StatsHandler struct {
	repo repository.StatsRepositoryInterface
}

func NewStatsHandler(repo repository.StatsRepositoryInterface) *StatsHandler {
	return &StatsHandler{repo: repo}
}

// Get serves the dashboard aggregate, recomputed per request.
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.repo.ProjectStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
