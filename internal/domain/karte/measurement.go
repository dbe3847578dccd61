package karte

import (
	"math"

	"github.com/BruksfildServices01/salon-karte/internal/httperr"
)

// MeasurementTypeWeight is the only measurement type recorded today.
const MeasurementTypeWeight = "weight"

const (
	MinWeight = 0.0
	MaxWeight = 300.0
)

// ValidateWeight rejects values the measurement form would never submit.
func ValidateWeight(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return httperr.ErrBusiness("invalid_value")
	}
	if value < MinWeight || value > MaxWeight {
		return httperr.ErrBusiness("value_out_of_range")
	}
	return nil
}
