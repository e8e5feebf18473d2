package models

import "time"

// User is an account record. Handlers never serialize it directly; API
// responses carry only id and email. The JSON tags exist for the file and
// redis backends, which persist the full record.
type User struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	Email          string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Salt           string    `gorm:"size:64;not null" json:"salt"`
	HashedPassword string    `gorm:"size:255;not null" json:"hashedPassword"`
	CreatedAt      time.Time `json:"createdAt"`
}
