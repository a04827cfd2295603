package memstore

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

type StatsStore struct {
	s *Store
}

var _ repository.StatsRepositoryInterface = (*StatsStore)(nil)

// ProjectStats walks the live maps on every call; nothing is cached.
func (ss *StatsStore) ProjectStats(ctx context.Context) (*model.ProjectStats, error) {
	ss.s.mu.RLock()
	defer ss.s.mu.RUnlock()

	stats := &model.ProjectStats{}
	for _, project := range ss.s.projects {
		switch project.Status {
		case model.ProjectStatusActive:
			stats.ActiveProjects++
		case model.ProjectStatusCompleted:
			stats.CompletedProjects++
		}
	}
	for _, task := range ss.s.tasks {
		if task.Completed {
			stats.CompletedTasks++
		} else {
			stats.PendingTasks++
		}
		stats.TimeSpent += task.TimeSpent
	}
	stats.Productivity = model.Productivity(stats.CompletedTasks, stats.PendingTasks)
	return stats, nil
}
