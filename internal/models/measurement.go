package models

import "time"

// Measurement is one body measurement of a client. Seed rows carry no
// created_at, rows inserted later do.
type Measurement struct {
	ID         string     `json:"id"`
	ClientID   string     `json:"client_id"`
	Type       string     `json:"type"`
	Value      float64    `json:"value"`
	MeasuredAt time.Time  `json:"measured_at"`
	CreatedBy  string     `json:"created_by"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`

	Client *NameRef `json:"client,omitempty"`
}
