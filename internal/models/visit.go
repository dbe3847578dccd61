package models

import "time"

type Visit struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	VisitDate   string    `json:"visit_date"`
	ServiceMenu string    `json:"service_menu"`
	Notes       string    `json:"notes"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`

	Client *NameRef `json:"client,omitempty"`
	Staff  *NameRef `json:"staff,omitempty"`
}
