package model

import "time"

// Persisted project statuses.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusOnHold    = "on-hold"
	ProjectStatusCancelled = "cancelled"
)

// Derived (display-only) project statuses. "late" and "review" never
// appear in the status column; they are computed per request.
const (
	DerivedStatusActive    = "active"
	DerivedStatusReview    = "review"
	DerivedStatusCompleted = "completed"
	DerivedStatusLate      = "late"
)

type Project struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	ClientName  string     `json:"clientName"`
	StartDate   Timestamp  `gorm:"type:timestamptz;not null" json:"startDate"`
	EndDate     *Timestamp `gorm:"type:timestamptz" json:"endDate"`
	Status      string     `gorm:"not null;default:active" json:"status"`
	Progress    int        `gorm:"not null;default:0" json:"progress"`
	TeamID      *uint      `json:"teamId"`
}

// DeriveStatus classifies a project for dashboard badges. The persisted
// status column is never mutated here: a project past its end date shows
// as late only while progress is below 100.
func DeriveStatus(p *Project, now time.Time) string {
	if p.Status == ProjectStatusCompleted {
		return DerivedStatusCompleted
	}
	if p.EndDate != nil && !p.EndDate.IsZero() && p.EndDate.Before(now) && p.Progress < 100 {
		return DerivedStatusLate
	}
	if p.Progress > 80 {
		return DerivedStatusReview
	}
	return DerivedStatusActive
}
