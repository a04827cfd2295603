package model

import "math"

// ProjectStats is the dashboard aggregate. It is recomputed from the
// full project and task sets on every call; nothing here is cached.
type ProjectStats struct {
	ActiveProjects    int `json:"activeProjects"`
	CompletedProjects int `json:"completedProjects"`
	PendingTasks      int `json:"pendingTasks"`
	CompletedTasks    int `json:"completedTasks"`
	TimeSpent         int `json:"timeSpent"`
	Productivity      int `json:"productivity"`
}

// Productivity is the share of all known tasks that are completed,
// rounded to a whole percentage. An empty task set yields 0.
func Productivity(completedTasks, pendingTasks int) int {
	total := completedTasks + pendingTasks
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completedTasks) / float64(total) * 100))
}
