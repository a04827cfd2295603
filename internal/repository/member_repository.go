package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

type MemberRepositoryInterface interface {
	List(ctx context.Context) ([]model.TeamMember, error)
	GetByID(ctx context.Context, id uint) (*model.TeamMember, error)
	Create(ctx context.Context, member *model.TeamMember) error
	Update(ctx context.Context, id uint, fields map[string]any) (*model.TeamMember, error)
	Delete(ctx context.Context, id uint) error
}

type MemberRepository struct {
	db *gorm.DB
}

var _ MemberRepositoryInterface = (*MemberRepository)(nil)

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) List(ctx context.Context) ([]model.TeamMember, error) {
	var members []model.TeamMember
	err := r.db.WithContext(ctx).Order("id").Find(&members).Error
	return members, err
}

func (r *MemberRepository) GetByID(ctx context.Context, id uint) (*model.TeamMember, error) {
	var member model.TeamMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *MemberRepository) Update(ctx context.Context, id uint, fields map[string]any) (*model.TeamMember, error) {
	member, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return member, nil
	}
	if err := r.db.WithContext(ctx).Model(member).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *MemberRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}
