// Package patch normalizes the loosely typed JSON bodies of partial
// updates into column-keyed field maps that both storage backends apply
// verbatim. The web client sends numeric fields as strings and dates as
// ISO-8601 strings; every coercion the update API tolerates lives here,
// nowhere else.
//
// Per-field rules:
//   - date columns accept RFC3339 strings and bare YYYY-MM-DD dates
//   - integer columns accept JSON numbers and numeric strings
//   - nullable references (teamId, assigneeId, timeEstimate, projectId
//     on events) accept null and the empty string as "clear"
//   - unknown keys, id and createdAt are dropped silently
package patch

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"taskboard/internal/model"
)

// Error reports fields whose values failed coercion. The update is
// rejected as a whole; nothing is persisted.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	return "invalid value for field(s): " + strings.Join(e.Fields, ", ")
}

// builder accumulates coerced columns and the names of bad fields.
type builder struct {
	fields map[string]any
	bad    []string
}

func newBuilder() *builder {
	return &builder{fields: make(map[string]any)}
}

func (b *builder) result() (map[string]any, error) {
	if len(b.bad) > 0 {
		sort.Strings(b.bad)
		return nil, &Error{Fields: b.bad}
	}
	return b.fields, nil
}

func (b *builder) str(column, field string, v any) {
	s, ok := v.(string)
	if !ok {
		b.bad = append(b.bad, field)
		return
	}
	b.fields[column] = s
}

func (b *builder) boolean(column, field string, v any) {
	val, ok := v.(bool)
	if !ok {
		b.bad = append(b.bad, field)
		return
	}
	b.fields[column] = val
}

func (b *builder) integer(column, field string, v any) {
	n, err := coerceInt(v)
	if err != nil {
		b.bad = append(b.bad, field)
		return
	}
	b.fields[column] = n
}

// boundedInt is integer with an inclusive range check, used for progress.
func (b *builder) boundedInt(column, field string, v any, min, max int) {
	n, err := coerceInt(v)
	if err != nil || n < min || n > max {
		b.bad = append(b.bad, field)
		return
	}
	b.fields[column] = n
}

func (b *builder) timestamp(column, field string, v any) {
	s, ok := v.(string)
	if !ok {
		b.bad = append(b.bad, field)
		return
	}
	ts, err := model.ParseTimestamp(s)
	if err != nil {
		b.bad = append(b.bad, field)
		return
	}
	b.fields[column] = ts
}

// nullableTimestamp treats null and "" as clearing the column.
func (b *builder) nullableTimestamp(column, field string, v any) {
	if v == nil || v == "" {
		b.fields[column] = nil
		return
	}
	b.timestamp(column, field, v)
}

// reference coerces an entity id; null and "" clear the column.
func (b *builder) reference(column, field string, v any) {
	if v == nil || v == "" {
		b.fields[column] = nil
		return
	}
	n, err := coerceInt(v)
	if err != nil || n < 0 {
		b.bad = append(b.bad, field)
		return
	}
	b.fields[column] = uint(n)
}

// requiredReference is reference for non-nullable foreign keys.
func (b *builder) requiredReference(column, field string, v any) {
	if v == nil || v == "" {
		b.bad = append(b.bad, field)
		return
	}
	b.reference(column, field, v)
}

func coerceInt(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case string:
		return strconv.Atoi(n)
	}
	return 0, fmt.Errorf("not a number: %v", v)
}

// Project normalizes a project update body.
func Project(raw map[string]any) (map[string]any, error) {
	b := newBuilder()
	for k, v := range raw {
		switch k {
		case "name":
			b.str("name", k, v)
		case "description":
			b.str("description", k, v)
		case "clientName":
			b.str("client_name", k, v)
		case "status":
			b.str("status", k, v)
		case "startDate":
			b.timestamp("start_date", k, v)
		case "endDate":
			b.nullableTimestamp("end_date", k, v)
		case "progress":
			b.boundedInt("progress", k, v, 0, 100)
		case "teamId":
			b.reference("team_id", k, v)
		}
	}
	return b.result()
}

// Task normalizes a task update body. createdAt is immutable and always
// dropped; column and order are accepted here as plain fields because
// the move endpoint, not update, owns the lane-fallback rule.
func Task(raw map[string]any) (map[string]any, error) {
	b := newBuilder()
	for k, v := range raw {
		switch k {
		case "title":
			b.str("title", k, v)
		case "description":
			b.str("description", k, v)
		case "projectId":
			b.requiredReference("project_id", k, v)
		case "status":
			b.str("status", k, v)
		case "priority":
			b.str("priority", k, v)
		case "assigneeId":
			b.reference("assignee_id", k, v)
		case "dueDate":
			b.nullableTimestamp("due_date", k, v)
		case "completed":
			b.boolean("completed", k, v)
		case "column":
			b.str("column", k, v)
		case "order":
			b.integer("order", k, v)
		case "timeSpent":
			b.integer("time_spent", k, v)
		case "timeEstimate":
			b.reference("time_estimate", k, v)
		}
	}
	return b.result()
}

// Member normalizes a team-member update body.
func Member(raw map[string]any) (map[string]any, error) {
	b := newBuilder()
	for k, v := range raw {
		switch k {
		case "name":
			b.str("name", k, v)
		case "role":
			b.str("role", k, v)
		case "email":
			b.str("email", k, v)
		case "avatarUrl":
			b.str("avatar_url", k, v)
		case "teamId":
			b.reference("team_id", k, v)
		}
	}
	return b.result()
}

// Team normalizes a team update body.
func Team(raw map[string]any) (map[string]any, error) {
	b := newBuilder()
	for k, v := range raw {
		switch k {
		case "name":
			b.str("name", k, v)
		case "description":
			b.str("description", k, v)
		case "avatarUrl":
			b.str("avatar_url", k, v)
		}
	}
	return b.result()
}

// Milestone normalizes a milestone update body.
func Milestone(raw map[string]any) (map[string]any, error) {
	b := newBuilder()
	for k, v := range raw {
		switch k {
		case "projectId":
			b.requiredReference("project_id", k, v)
		case "title":
			b.str("title", k, v)
		case "date":
			b.timestamp("date", k, v)
		case "completed":
			b.boolean("completed", k, v)
		}
	}
	return b.result()
}

// Event normalizes an event update body.
func Event(raw map[string]any) (map[string]any, error) {
	b := newBuilder()
	for k, v := range raw {
		switch k {
		case "title":
			b.str("title", k, v)
		case "description":
			b.str("description", k, v)
		case "start":
			b.timestamp("start", k, v)
		case "end":
			b.nullableTimestamp("end", k, v)
		case "allDay":
			b.boolean("all_day", k, v)
		case "projectId":
			b.reference("project_id", k, v)
		case "type":
			b.str("type", k, v)
		case "color":
			b.str("color", k, v)
		}
	}
	return b.result()
}
