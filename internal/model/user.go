package model

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Name           string    `gorm:"not null" json:"name"`
	HashedPassword string    `gorm:"not null" json:"-"`
	CreatedAt      Timestamp `gorm:"type:timestamptz" json:"createdAt"`
}
