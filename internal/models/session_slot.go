package models

import "time"

// SessionSlot is the single-row table backing the postgres session slot.
type SessionSlot struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
