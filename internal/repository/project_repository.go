package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

type ProjectRepositoryInterface interface {
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id uint) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, id uint, fields map[string]any) (*model.Project, error)
	Delete(ctx context.Context, id uint) error
}

type ProjectRepository struct {
	db *gorm.DB
}

var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).Order("id").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update merges the already-normalized fields over the stored record.
// Omitted columns keep their prior value.
func (r *ProjectRepository) Update(ctx context.Context, id uint, fields map[string]any) (*model.Project, error) {
	project, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return project, nil
	}
	if err := r.db.WithContext(ctx).Model(project).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
