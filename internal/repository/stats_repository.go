package repository

import (
	"context"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

type StatsRepositoryInterface interface {
	ProjectStats(ctx context.Context) (*model.ProjectStats, error)
}

type StatsRepository struct {
	db *gorm.DB
}

var _ StatsRepositoryInterface = (*StatsRepository)(nil)

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// ProjectStats recomputes the dashboard aggregate from the live project
// and task tables on every call. There is no cached counter to go stale.
func (r *StatsRepository) ProjectStats(ctx context.Context) (*model.ProjectStats, error) {
	db := r.db.WithContext(ctx)

	var activeProjects, completedProjects, pendingTasks, completedTasks int64
	if err := db.Model(&model.Project{}).
		Where("status = ?", model.ProjectStatusActive).
		Count(&activeProjects).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Project{}).
		Where("status = ?", model.ProjectStatusCompleted).
		Count(&completedProjects).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Task{}).
		Where("completed = ?", false).
		Count(&pendingTasks).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Task{}).
		Where("completed = ?", true).
		Count(&completedTasks).Error; err != nil {
		return nil, err
	}

	var timeSpent struct {
		Total int
	}
	if err := db.Model(&model.Task{}).
		Select("COALESCE(SUM(time_spent), 0) AS total").
		Scan(&timeSpent).Error; err != nil {
		return nil, err
	}

	return &model.ProjectStats{
		ActiveProjects:    int(activeProjects),
		CompletedProjects: int(completedProjects),
		PendingTasks:      int(pendingTasks),
		CompletedTasks:    int(completedTasks),
		TimeSpent:         timeSpent.Total,
		Productivity:      model.Productivity(int(completedTasks), int(pendingTasks)),
	}, nil
}
