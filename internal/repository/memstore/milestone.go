package memstore

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

type MilestoneStore struct {
	s *Store
}

var _ repository.MilestoneRepositoryInterface = (*MilestoneStore)(nil)

func milestoneLess(a, b model.Milestone) bool { return a.ID < b.ID }

func (ms *MilestoneStore) List(ctx context.Context) ([]model.Milestone, error) {
	ms.s.mu.RLock()
	defer ms.s.mu.RUnlock()
	return values(ms.s.milestones, milestoneLess), nil
}

func (ms *MilestoneStore) ListByProject(ctx context.Context, projectID uint) ([]model.Milestone, error) {
	ms.s.mu.RLock()
	defer ms.s.mu.RUnlock()
	all := values(ms.s.milestones, milestoneLess)
	milestones := make([]model.Milestone, 0, len(all))
	for _, milestone := range all {
		if milestone.ProjectID == projectID {
			milestones = append(milestones, milestone)
		}
	}
	return milestones, nil
}

func (ms *MilestoneStore) GetByID(ctx context.Context, id uint) (*model.Milestone, error) {
	ms.s.mu.RLock()
	defer ms.s.mu.RUnlock()
	milestone, ok := ms.s.milestones[id]
	if !ok {
		return nil, repository.ErrMilestoneNotFound
	}
	return &milestone, nil
}

func (ms *MilestoneStore) Create(ctx context.Context, milestone *model.Milestone) error {
	ms.s.mu.Lock()
	defer ms.s.mu.Unlock()
	ms.s.milestoneSeq++
	milestone.ID = ms.s.milestoneSeq
	ms.s.milestones[milestone.ID] = *milestone
	return nil
}

func (ms *MilestoneStore) Update(ctx context.Context, id uint, fields map[string]any) (*model.Milestone, error) {
	ms.s.mu.Lock()
	defer ms.s.mu.Unlock()
	milestone, ok := ms.s.milestones[id]
	if !ok {
		return nil, repository.ErrMilestoneNotFound
	}
	applyMilestone(&milestone, fields)
	ms.s.milestones[id] = milestone
	return &milestone, nil
}

func (ms *MilestoneStore) Delete(ctx context.Context, id uint) error {
	ms.s.mu.Lock()
	defer ms.s.mu.Unlock()
	if _, ok := ms.s.milestones[id]; !ok {
		return repository.ErrMilestoneNotFound
	}
	delete(ms.s.milestones, id)
	return nil
}

func applyMilestone(m *model.Milestone, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "project_id":
			m.ProjectID = v.(uint)
		case "title":
			m.Title = v.(string)
		case "date":
			m.Date = v.(model.Timestamp)
		case "completed":
			m.Completed = v.(bool)
		}
	}
}
