package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

type EventRepositoryInterface interface {
	List(ctx context.Context) ([]model.Event, error)
	ListByProject(ctx context.Context, projectID uint) ([]model.Event, error)
	GetByID(ctx context.Context, id uint) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, id uint, fields map[string]any) (*model.Event, error)
	Delete(ctx context.Context, id uint) error
}

type EventRepository struct {
	db *gorm.DB
}

var _ EventRepositoryInterface = (*EventRepository)(nil)

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).Order("id").Find(&events).Error
	return events, err
}

func (r *EventRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id").Find(&events).Error
	return events, err
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *EventRepository) Update(ctx context.Context, id uint, fields map[string]any) (*model.Event, error) {
	event, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return event, nil
	}
	if err := r.db.WithContext(ctx).Model(event).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
