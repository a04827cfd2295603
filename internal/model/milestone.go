package model

// Milestone is a descriptive marker on a project timeline. Completing a
// milestone has no effect on the project's progress.
type Milestone struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;index" json:"projectId"`
	Title     string    `gorm:"not null" json:"title"`
	Date      Timestamp `gorm:"type:timestamptz;not null" json:"date"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
}
