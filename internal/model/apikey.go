package model

// APIKey authenticates service-to-service callers via the X-API-Key
// header. The key material is generated server-side, never supplied.
type APIKey struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Key  string `gorm:"uniqueIndex;not null" json:"apiKey"`
}
