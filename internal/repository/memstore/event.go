package memstore

import (
	"context"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

type EventStore struct {
	s *Store
}

var _ repository.EventRepositoryInterface = (*EventStore)(nil)

func eventLess(a, b model.Event) bool { return a.ID < b.ID }

func (es *EventStore) List(ctx context.Context) ([]model.Event, error) {
	es.s.mu.RLock()
	defer es.s.mu.RUnlock()
	return values(es.s.events, eventLess), nil
}

func (es *EventStore) ListByProject(ctx context.Context, projectID uint) ([]model.Event, error) {
	es.s.mu.RLock()
	defer es.s.mu.RUnlock()
	all := values(es.s.events, eventLess)
	events := make([]model.Event, 0, len(all))
	for _, event := range all {
		if event.ProjectID != nil && *event.ProjectID == projectID {
			events = append(events, event)
		}
	}
	return events, nil
}

func (es *EventStore) GetByID(ctx context.Context, id uint) (*model.Event, error) {
	es.s.mu.RLock()
	defer es.s.mu.RUnlock()
	event, ok := es.s.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	return &event, nil
}

func (es *EventStore) Create(ctx context.Context, event *model.Event) error {
	es.s.mu.Lock()
	defer es.s.mu.Unlock()
	es.s.eventSeq++
	event.ID = es.s.eventSeq
	es.s.events[event.ID] = *event
	return nil
}

func (es *EventStore) Update(ctx context.Context, id uint, fields map[string]any) (*model.Event, error) {
	es.s.mu.Lock()
	defer es.s.mu.Unlock()
	event, ok := es.s.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	applyEvent(&event, fields)
	es.s.events[id] = event
	return &event, nil
}

func (es *EventStore) Delete(ctx context.Context, id uint) error {
	es.s.mu.Lock()
	defer es.s.mu.Unlock()
	if _, ok := es.s.events[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(es.s.events, id)
	return nil
}

func applyEvent(e *model.Event, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "title":
			e.Title = v.(string)
		case "description":
			e.Description = v.(string)
		case "start":
			e.Start = v.(model.Timestamp)
		case "end":
			if v == nil {
				e.End = nil
			} else {
				ts := v.(model.Timestamp)
				e.End = &ts
			}
		case "all_day":
			e.AllDay = v.(bool)
		case "project_id":
			if v == nil {
				e.ProjectID = nil
			} else {
				projectID := v.(uint)
				e.ProjectID = &projectID
			}
		case "type":
			e.Type = v.(string)
		case "color":
			e.Color = v.(string)
		}
	}
}
