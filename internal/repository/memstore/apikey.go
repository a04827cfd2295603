package memstore

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

type APIKeyStore struct {
	s *Store
}

var _ repository.APIKeyRepositoryInterface = (*APIKeyStore)(nil)

func (ks *APIKeyStore) List(ctx context.Context) ([]model.APIKey, error) {
	ks.s.mu.RLock()
	defer ks.s.mu.RUnlock()
	return values(ks.s.apiKeys, func(a, b model.APIKey) bool { return a.ID < b.ID }), nil
}

func (ks *APIKeyStore) Create(ctx context.Context, key *model.APIKey) error {
	ks.s.mu.Lock()
	defer ks.s.mu.Unlock()
	ks.s.apiKeySeq++
	key.ID = ks.s.apiKeySeq
	ks.s.apiKeys[key.ID] = *key
	return nil
}

func (ks *APIKeyStore) FindByKey(ctx context.Context, key string) (*model.APIKey, error) {
	ks.s.mu.RLock()
	defer ks.s.mu.RUnlock()
	for _, apiKey := range ks.s.apiKeys {
		if apiKey.Key == key {
			k := apiKey
			return &k, nil
		}
	}
	return nil, repository.ErrAPIKeyNotFound
}
