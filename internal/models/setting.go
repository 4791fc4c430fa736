package models

import "time"

// Setting is one persisted key/value pair. Values are JSON documents.
type Setting struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
