package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

type TeamRepositoryInterface interface {
	List(ctx context.Context) ([]model.Team, error)
	GetByID(ctx context.Context, id uint) (*model.Team, error)
	Create(ctx context.Context, team *model.Team) error
	Update(ctx context.Context, id uint, fields map[string]any) (*model.Team, error)
	Delete(ctx context.Context, id uint) error
}

type TeamRepository struct {
	db *gorm.DB
}

var _ TeamRepositoryInterface = (*TeamRepository)(nil)

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).Order("id").Find(&teams).Error
	return teams, err
}

func (r *TeamRepository) GetByID(ctx context.Context, id uint) (*model.Team, error) {
	var team model.Team
	if err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) Create(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *TeamRepository) Update(ctx context.Context, id uint, fields map[string]any) (*model.Team, error) {
	team, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return team, nil
	}
	if err := r.db.WithContext(ctx).Model(team).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes the team only. Members keep their teamId; resolving a
// dangling team reference is the reader's job.
func (r *TeamRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Team{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamNotFound
	}
	return nil
}
