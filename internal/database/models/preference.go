package models

import "time"

// Preference is a single record of the persistent key-value store used for
// user list preferences. Values are opaque strings (JSON-encoded by callers);
// the store itself knows nothing about their shape.
type Preference struct {
	Key       string    `json:"key" gorm:"primaryKey;size:64"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}
