package memstore

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

type MemberStore struct {
	s *Store
}

var _ repository.MemberRepositoryInterface = (*MemberStore)(nil)

func (ms *MemberStore) List(ctx context.Context) ([]model.TeamMember, error) {
	ms.s.mu.RLock()
	defer ms.s.mu.RUnlock()
	return values(ms.s.members, func(a, b model.TeamMember) bool { return a.ID < b.ID }), nil
}

func (ms *MemberStore) GetByID(ctx context.Context, id uint) (*model.TeamMember, error) {
	ms.s.mu.RLock()
	defer ms.s.mu.RUnlock()
	member, ok := ms.s.members[id]
	if !ok {
		return nil, repository.ErrMemberNotFound
	}
	return &member, nil
}

func (ms *MemberStore) Create(ctx context.Context, member *model.TeamMember) error {
	ms.s.mu.Lock()
	defer ms.s.mu.Unlock()
	ms.s.memberSeq++
	member.ID = ms.s.memberSeq
	ms.s.members[member.ID] = *member
	return nil
}

func (ms *MemberStore) Update(ctx context.Context, id uint, fields map[string]any) (*model.TeamMember, error) {
	ms.s.mu.Lock()
	defer ms.s.mu.Unlock()
	member, ok := ms.s.members[id]
	if !ok {
		return nil, repository.ErrMemberNotFound
	}
	applyMember(&member, fields)
	ms.s.members[id] = member
	return &member, nil
}

func (ms *MemberStore) Delete(ctx context.Context, id uint) error {
	ms.s.mu.Lock()
	defer ms.s.mu.Unlock()
	if _, ok := ms.s.members[id]; !ok {
		return repository.ErrMemberNotFound
	}
	delete(ms.s.members, id)
	return nil
}

func applyMember(m *model.TeamMember, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "name":
			m.Name = v.(string)
		case "role":
			m.Role = v.(string)
		case "email":
			m.Email = v.(string)
		case "avatar_url":
			m.AvatarURL = v.(string)
		case "team_id":
			if v == nil {
				m.TeamID = nil
			} else {
				teamID := v.(uint)
				m.TeamID = &teamID
			}
		}
	}
}
