package memstore

import (
	"context"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

type TaskStore struct {
	s *Store
}

var _ repository.TaskRepositoryInterface = (*TaskStore)(nil)

// taskLess sorts by kanban order, insertion sequence breaking ties.
func taskLess(a, b model.Task) bool {
	if a.Order != b.Order {
		return a.Order < b.Order
	}
	return a.ID < b.ID
}

func (ts *TaskStore) List(ctx context.Context) ([]model.Task, error) {
	ts.s.mu.RLock()
	defer ts.s.mu.RUnlock()
	return values(ts.s.tasks, taskLess), nil
}

func (ts *TaskStore) ListByProject(ctx context.Context, projectID uint) ([]model.Task, error) {
	ts.s.mu.RLock()
	defer ts.s.mu.RUnlock()
	all := values(ts.s.tasks, taskLess)
	tasks := make([]model.Task, 0, len(all))
	for _, task := range all {
		if task.ProjectID == projectID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (ts *TaskStore) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	ts.s.mu.RLock()
	defer ts.s.mu.RUnlock()
	task, ok := ts.s.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	return &task, nil
}

func (ts *TaskStore) Create(ctx context.Context, task *model.Task) error {
	ts.s.mu.Lock()
	defer ts.s.mu.Unlock()
	ts.s.taskSeq++
	task.ID = ts.s.taskSeq
	if task.CreatedAt.IsZero() {
		task.CreatedAt = model.NewTimestamp(time.Now().UTC())
	}
	ts.s.tasks[task.ID] = *task
	return nil
}

func (ts *TaskStore) Update(ctx context.Context, id uint, fields map[string]any) (*model.Task, error) {
	ts.s.mu.Lock()
	defer ts.s.mu.Unlock()
	task, ok := ts.s.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	applyTask(&task, fields)
	ts.s.tasks[id] = task
	return &task, nil
}

func (ts *TaskStore) Delete(ctx context.Context, id uint) error {
	ts.s.mu.Lock()
	defer ts.s.mu.Unlock()
	if _, ok := ts.s.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(ts.s.tasks, id)
	return nil
}

// Move writes column and order only; status and completed are untouched
// and no neighboring cards are renumbered.
func (ts *TaskStore) Move(ctx context.Context, id uint, column string, order int) (*model.Task, error) {
	ts.s.mu.Lock()
	defer ts.s.mu.Unlock()
	task, ok := ts.s.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	task.Column = column
	task.Order = order
	ts.s.tasks[id] = task
	return &task, nil
}

func applyTask(t *model.Task, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "title":
			t.Title = v.(string)
		case "description":
			t.Description = v.(string)
		case "project_id":
			t.ProjectID = v.(uint)
		case "status":
			t.Status = v.(string)
		case "priority":
			t.Priority = v.(string)
		case "assignee_id":
			if v == nil {
				t.AssigneeID = nil
			} else {
				assigneeID := v.(uint)
				t.AssigneeID = &assigneeID
			}
		case "due_date":
			if v == nil {
				t.DueDate = nil
			} else {
				ts := v.(model.Timestamp)
				t.DueDate = &ts
			}
		case "completed":
			t.Completed = v.(bool)
		case "column":
			t.Column = v.(string)
		case "order":
			t.Order = v.(int)
		case "time_spent":
			t.TimeSpent = v.(int)
		case "time_estimate":
			if v == nil {
				t.TimeEstimate = nil
			} else {
				estimate := int(v.(uint))
				t.TimeEstimate = &estimate
			}
		}
	}
}
