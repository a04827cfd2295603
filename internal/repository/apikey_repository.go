package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

type APIKeyRepositoryInterface interface {
	List(ctx context.Context) ([]model.APIKey, error)
	Create(ctx context.Context, key *model.APIKey) error
	FindByKey(ctx context.Context, key string) (*model.APIKey, error)
}

type APIKeyRepository struct {
	db *gorm.DB
}

var _ APIKeyRepositoryInterface = (*APIKeyRepository)(nil)

func NewAPIKeyRepository(db *gorm.DB) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

func (r *APIKeyRepository) List(ctx context.Context) ([]model.APIKey, error) {
	var keys []model.APIKey
	err := r.db.WithContext(ctx).Order("id").Find(&keys).Error
	return keys, err
}

func (r *APIKeyRepository) Create(ctx context.Context, key *model.APIKey) error {
	return r.db.WithContext(ctx).Create(key).Error
}

func (r *APIKeyRepository) FindByKey(ctx context.Context, key string) (*model.APIKey, error) {
	var apiKey model.APIKey
	if err := r.db.WithContext(ctx).First(&apiKey, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAPIKeyNotFound
		}
		return nil, err
	}
	return &apiKey, nil
}
