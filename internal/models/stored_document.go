package models

import "time"

// StoredDocument is the postgres row shape for a persisted site document.
// The payload is the full LandingPageData JSON.
type StoredDocument struct {
	UserID    string    `gorm:"primaryKey;size:64"`
	Payload   string    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}
