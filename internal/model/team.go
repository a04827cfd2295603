package model

// Team owns members only through their TeamID back-reference; membership
// changes by updating the member, never the team.
type Team struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatarUrl"`
}
