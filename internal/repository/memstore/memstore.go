// Package memstore is the map-backed storage driver. It implements the
// same repository interfaces as the gorm implementations, holds each
// entity in a flat map keyed by id, and hands out ids from monotonic
// counters that never reuse a deleted value. It backs tests and the
// STORAGE_DRIVER=memory mode.
package memstore

import (
	"sort"
	"sync"

	"taskboard/internal/model"
)

type Store struct {
	mu sync.RWMutex

	projects   map[uint]model.Project
	tasks      map[uint]model.Task
	members    map[uint]model.TeamMember
	teams      map[uint]model.Team
	milestones map[uint]model.Milestone
	events     map[uint]model.Event
	users      map[uint]model.User
	apiKeys    map[uint]model.APIKey

	projectSeq   uint
	taskSeq      uint
	memberSeq    uint
	teamSeq      uint
	milestoneSeq uint
	eventSeq     uint
	userSeq      uint
	apiKeySeq    uint
}

func New() *Store {
	return &Store{
		projects:   make(map[uint]model.Project),
		tasks:      make(map[uint]model.Task),
		members:    make(map[uint]model.TeamMember),
		teams:      make(map[uint]model.Team),
		milestones: make(map[uint]model.Milestone),
		events:     make(map[uint]model.Event),
		users:      make(map[uint]model.User),
		apiKeys:    make(map[uint]model.APIKey),
	}
}

func (s *Store) Projects() *ProjectStore     { return &ProjectStore{s} }
func (s *Store) Tasks() *TaskStore           { return &TaskStore{s} }
func (s *Store) Members() *MemberStore       { return &MemberStore{s} }
func (s *Store) Teams() *TeamStore           { return &TeamStore{s} }
func (s *Store) Milestones() *MilestoneStore { return &MilestoneStore{s} }
func (s *Store) Events() *EventStore         { return &EventStore{s} }
func (s *Store) Users() *UserStore           { return &UserStore{s} }
func (s *Store) APIKeys() *APIKeyStore       { return &APIKeyStore{s} }
func (s *Store) Stats() *StatsStore          { return &StatsStore{s} }

// values returns map values sorted with less, i.e. insertion order when
// sorting by id since ids are monotonic.
func values[T any](m map[uint]T, less func(a, b T) bool) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
