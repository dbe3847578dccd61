package models

import "time"

// NameRef is the display name of a referenced record, resolved at read
// time.
type NameRef struct {
	Name string `json:"name"`
}

// Client is a salon customer. Contact and primary staff are optional.
type Client struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Contact        *string   `json:"contact"`
	Notes          string    `json:"notes"`
	PrimaryStaffID *string   `json:"primary_staff_id"`
	CreatedAt      time.Time `json:"created_at"`

	Staff *NameRef `json:"staff,omitempty"`
}
