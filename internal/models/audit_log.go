package models

import "time"

type AuditLog struct {
	ID string `json:"id"`

	UserID *string `json:"user_id"`
	Action string  `json:"action"`

	Entity   string  `json:"entity"`
	EntityID *string `json:"entity_id"`
	Metadata string  `json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
