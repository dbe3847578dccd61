package dto

import "time"

// MeasurementPointDTO is one point of a client's weight chart.
type MeasurementPointDTO struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	Value      float64   `json:"value"`
	MeasuredAt time.Time `json:"measured_at"`
}

type MeasurementChartDTO struct {
	ClientID string                `json:"client_id"`
	From     string                `json:"from"`
	To       string                `json:"to"`
	Points   []MeasurementPointDTO `json:"points"`
}
