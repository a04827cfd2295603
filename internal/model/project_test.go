package model_test

import (
	"testing"
	"time"

	"taskboard/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := model.NewTimestamp(now.AddDate(0, -1, 0))
	future := model.NewTimestamp(now.AddDate(0, 1, 0))

	cases := []struct {
		name    string
		project model.Project
		want    string
	}{
		{
			"completed wins over everything",
			model.Project{Status: model.ProjectStatusCompleted, EndDate: &past, Progress: 10},
			model.DerivedStatusCompleted,
		},
		{
			"past end date and unfinished is late",
			model.Project{Status: model.ProjectStatusActive, EndDate: &past, Progress: 60},
			model.DerivedStatusLate,
		},
		{
			"past end date at 100 percent is review, not late",
			model.Project{Status: model.ProjectStatusActive, EndDate: &past, Progress: 100},
			model.DerivedStatusReview,
		},
		{
			"high progress is review",
			model.Project{Status: model.ProjectStatusActive, Progress: 85},
			model.DerivedStatusReview,
		},
		{
			"progress 80 is still active",
			model.Project{Status: model.ProjectStatusActive, Progress: 80},
			model.DerivedStatusActive,
		},
		{
			"future end date stays active",
			model.Project{Status: model.ProjectStatusActive, EndDate: &future, Progress: 50},
			model.DerivedStatusActive,
		},
		{
			"late beats review",
			model.Project{Status: model.ProjectStatusActive, EndDate: &past, Progress: 90},
			model.DerivedStatusLate,
		},
		{
			"on-hold project derives from progress",
			model.Project{Status: model.ProjectStatusOnHold, Progress: 20},
			model.DerivedStatusActive,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, model.DeriveStatus(&tc.project, now))
		})
	}
}
