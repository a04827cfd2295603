package model

// TeamMember belongs to a team through TeamID and to tasks through their
// AssigneeID. Both are weak references: deleting a member leaves its id
// behind on any task that pointed at it.
type TeamMember struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Role      string `gorm:"not null" json:"role"`
	Email     string `gorm:"not null" json:"email"`
	AvatarURL string `json:"avatarUrl"`
	TeamID    *uint  `json:"teamId"`
}
