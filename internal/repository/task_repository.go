package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

type TaskRepositoryInterface interface {
	List(ctx context.Context) ([]model.Task, error)
	ListByProject(ctx context.Context, projectID uint) ([]model.Task, error)
	GetByID(ctx context.Context, id uint) (*model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, id uint, fields map[string]any) (*model.Task, error)
	Delete(ctx context.Context, id uint) error
	Move(ctx context.Context, id uint, column string, order int) (*model.Task, error)
}

type TaskRepository struct {
	db *gorm.DB
}

var _ TaskRepositoryInterface = (*TaskRepository)(nil)

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// List returns all tasks in kanban order within lanes, insertion order
// breaking ties.
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order(`"order"`).Order("id").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order(`"order"`).Order("id").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = model.NewTimestamp(time.Now().UTC())
	}
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) Update(ctx context.Context, id uint, fields map[string]any) (*model.Task, error) {
	task, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return task, nil
	}
	if err := r.db.WithContext(ctx).Model(task).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Move repositions a card: it writes column and order only. Status and
// completed are separate user-level fields and stay untouched, and no
// neighboring order values are renumbered; readers resolve collisions by
// sorting.
func (r *TaskRepository) Move(ctx context.Context, id uint, column string, order int) (*model.Task, error) {
	task, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	task.Column = column
	task.Order = order
	if err := r.db.WithContext(ctx).Model(task).
		Updates(map[string]any{"column": column, "order": order}).Error; err != nil {
		return nil, err
	}
	return task, nil
}
