package memstore

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

type TeamStore struct {
	s *Store
}

var _ repository.TeamRepositoryInterface = (*TeamStore)(nil)

func (ts *TeamStore) List(ctx context.Context) ([]model.Team, error) {
	ts.s.mu.RLock()
	defer ts.s.mu.RUnlock()
	return values(ts.s.teams, func(a, b model.Team) bool { return a.ID < b.ID }), nil
}

func (ts *TeamStore) GetByID(ctx context.Context, id uint) (*model.Team, error) {
	ts.s.mu.RLock()
	defer ts.s.mu.RUnlock()
	team, ok := ts.s.teams[id]
	if !ok {
		return nil, repository.ErrTeamNotFound
	}
	return &team, nil
}

func (ts *TeamStore) Create(ctx context.Context, team *model.Team) error {
	ts.s.mu.Lock()
	defer ts.s.mu.Unlock()
	ts.s.teamSeq++
	team.ID = ts.s.teamSeq
	ts.s.teams[team.ID] = *team
	return nil
}

func (ts *TeamStore) Update(ctx context.Context, id uint, fields map[string]any) (*model.Team, error) {
	ts.s.mu.Lock()
	defer ts.s.mu.Unlock()
	team, ok := ts.s.teams[id]
	if !ok {
		return nil, repository.ErrTeamNotFound
	}
	applyTeam(&team, fields)
	ts.s.teams[id] = team
	return &team, nil
}

// Delete removes the team only; members keep their dangling teamId.
func (ts *TeamStore) Delete(ctx context.Context, id uint) error {
	ts.s.mu.Lock()
	defer ts.s.mu.Unlock()
	if _, ok := ts.s.teams[id]; !ok {
		return repository.ErrTeamNotFound
	}
	delete(ts.s.teams, id)
	return nil
}

func applyTeam(t *model.Team, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "name":
			t.Name = v.(string)
		case "description":
			t.Description = v.(string)
		case "avatar_url":
			t.AvatarURL = v.(string)
		}
	}
}
