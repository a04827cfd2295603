package model

// Event types used by the calendar. Type and Color are free-form tags;
// these are just the values the client picks from.
const (
	EventTypeMeeting   = "meeting"
	EventTypeDeadline  = "deadline"
	EventTypeMilestone = "milestone"
)

// EventColorDefault must match the column default in the Event schema.
const EventColorDefault = "blue"

type Event struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Start       Timestamp  `gorm:"type:timestamptz;not null" json:"start"`
	End         *Timestamp `gorm:"type:timestamptz" json:"end"`
	AllDay      bool       `gorm:"not null;default:false" json:"allDay"`
	ProjectID   *uint      `json:"projectId"`
	Type        string     `gorm:"not null;default:meeting" json:"type"`
	Color       string     `gorm:"default:blue" json:"color"`
}
