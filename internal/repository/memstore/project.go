package memstore

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

type ProjectStore struct {
	s *Store
}

var _ repository.ProjectRepositoryInterface = (*ProjectStore)(nil)

func (ps *ProjectStore) List(ctx context.Context) ([]model.Project, error) {
	ps.s.mu.RLock()
	defer ps.s.mu.RUnlock()
	return values(ps.s.projects, func(a, b model.Project) bool { return a.ID < b.ID }), nil
}

func (ps *ProjectStore) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	ps.s.mu.RLock()
	defer ps.s.mu.RUnlock()
	project, ok := ps.s.projects[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	return &project, nil
}

func (ps *ProjectStore) Create(ctx context.Context, project *model.Project) error {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()
	ps.s.projectSeq++
	project.ID = ps.s.projectSeq
	ps.s.projects[project.ID] = *project
	return nil
}

func (ps *ProjectStore) Update(ctx context.Context, id uint, fields map[string]any) (*model.Project, error) {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()
	project, ok := ps.s.projects[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	applyProject(&project, fields)
	ps.s.projects[id] = project
	return &project, nil
}

func (ps *ProjectStore) Delete(ctx context.Context, id uint) error {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()
	if _, ok := ps.s.projects[id]; !ok {
		return repository.ErrProjectNotFound
	}
	delete(ps.s.projects, id)
	return nil
}

// applyProject merges a normalized field map (see the patch package)
// over a stored record.
func applyProject(p *model.Project, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "description":
			p.Description = v.(string)
		case "client_name":
			p.ClientName = v.(string)
		case "status":
			p.Status = v.(string)
		case "start_date":
			p.StartDate = v.(model.Timestamp)
		case "end_date":
			if v == nil {
				p.EndDate = nil
			} else {
				ts := v.(model.Timestamp)
				p.EndDate = &ts
			}
		case "progress":
			p.Progress = v.(int)
		case "team_id":
			if v == nil {
				p.TeamID = nil
			} else {
				teamID := v.(uint)
				p.TeamID = &teamID
			}
		}
	}
}
