package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

type MilestoneRepositoryInterface interface {
	List(ctx context.Context) ([]model.Milestone, error)
	ListByProject(ctx context.Context, projectID uint) ([]model.Milestone, error)
	GetByID(ctx context.Context, id uint) (*model.Milestone, error)
	Create(ctx context.Context, milestone *model.Milestone) error
	Update(ctx context.Context, id uint, fields map[string]any) (*model.Milestone, error)
	Delete(ctx context.Context, id uint) error
}

type MilestoneRepository struct {
	db *gorm.DB
}

var _ MilestoneRepositoryInterface = (*MilestoneRepository)(nil)

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) List(ctx context.Context) ([]model.Milestone, error) {
	var milestones []model.Milestone
	err := r.db.WithContext(ctx).Order("id").Find(&milestones).Error
	return milestones, err
}

func (r *MilestoneRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Milestone, error) {
	var milestones []model.Milestone
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id").Find(&milestones).Error
	return milestones, err
}

func (r *MilestoneRepository) GetByID(ctx context.Context, id uint) (*model.Milestone, error) {
	var milestone model.Milestone
	if err := r.db.WithContext(ctx).First(&milestone, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMilestoneNotFound
		}
		return nil, err
	}
	return &milestone, nil
}

func (r *MilestoneRepository) Create(ctx context.Context, milestone *model.Milestone) error {
	return r.db.WithContext(ctx).Create(milestone).Error
}

func (r *MilestoneRepository) Update(ctx context.Context, id uint, fields map[string]any) (*model.Milestone, error) {
	milestone, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return milestone, nil
	}
	if err := r.db.WithContext(ctx).Model(milestone).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *MilestoneRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Milestone{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMilestoneNotFound
	}
	return nil
}
