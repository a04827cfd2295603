package memstore

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

type UserStore struct {
	s *Store
}

var _ repository.UserRepositoryInterface = (*UserStore)(nil)

func (us *UserStore) Create(ctx context.Context, user *model.User) error {
	us.s.mu.Lock()
	defer us.s.mu.Unlock()
	us.s.userSeq++
	user.ID = us.s.userSeq
	us.s.users[user.ID] = *user
	return nil
}

func (us *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	us.s.mu.RLock()
	defer us.s.mu.RUnlock()
	for _, user := range us.s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (us *UserStore) GetByID(ctx context.Context, id uint) (*model.User, error) {
	us.s.mu.RLock()
	defer us.s.mu.RUnlock()
	user, ok := us.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}
