package model

// Kanban columns. The board has exactly these four lanes.
const (
	ColumnTodo       = "todo"
	ColumnInProgress = "in-progress"
	ColumnReview     = "review"
	ColumnCompleted  = "completed"
)

// Task statuses share the column vocabulary but are a separate,
// independently settable field. Moving a card between lanes does not
// touch status; explicit "complete" actions in the client set both.
const (
	TaskStatusTodo       = ColumnTodo
	TaskStatusInProgress = ColumnInProgress
	TaskStatusReview     = ColumnReview
	TaskStatusCompleted  = ColumnCompleted
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidColumn reports whether s names one of the four lanes.
func ValidColumn(s string) bool {
	switch s {
	case ColumnTodo, ColumnInProgress, ColumnReview, ColumnCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	ProjectID   uint       `gorm:"not null;index" json:"projectId"`
	Status      string     `gorm:"not null;default:todo" json:"status"`
	Priority    string     `gorm:"not null;default:medium" json:"priority"`
	AssigneeID  *uint      `json:"assigneeId"`
	DueDate     *Timestamp `gorm:"type:timestamptz" json:"dueDate"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	// Column is the kanban lane; Order is a sparse sort key within it.
	// Order values are not kept unique or contiguous; readers sort
	// ascending and break ties by insertion sequence.
	Column       string    `gorm:"not null;default:todo" json:"column"`
	Order        int       `gorm:"not null;default:0" json:"order"`
	TimeSpent    int       `gorm:"not null;default:0" json:"timeSpent"`
	TimeEstimate *int      `json:"timeEstimate"`
	CreatedAt    Timestamp `gorm:"type:timestamptz;not null" json:"createdAt"`
}
