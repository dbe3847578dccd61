package measurement

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/salon-karte/internal/audit"
	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/httperr"
	"github.com/BruksfildServices01/salon-karte/internal/models"
	"github.com/BruksfildServices01/salon-karte/internal/timezone"
)

type CreateMeasurementInput struct {
	ActorID string

	ClientID string
	Value    float64
	// Date is YYYY-MM-DD in the salon's timezone.
	Date string
}

type CreateMeasurement struct {
	measurements karte.MeasurementRepository
	clients      karte.ClientRepository
	audit        *audit.Dispatcher
	loc          *time.Location
}

func NewCreateMeasurement(
	measurements karte.MeasurementRepository,
	clients karte.ClientRepository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateMeasurement {
	return &CreateMeasurement{
		measurements: measurements,
		clients:      clients,
		audit:        audit,
		loc:          loc,
	}
}

func (uc *CreateMeasurement) Execute(
	ctx context.Context,
	in CreateMeasurementInput,
) (*models.Measurement, error) {

	measuredAt, err := timezone.ParseDate(in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_measured_at")
	}
	if err := karte.ValidateWeight(in.Value); err != nil {
		return nil, err
	}

	if _, err := uc.clients.GetClient(ctx, in.ClientID); err != nil {
		if errors.Is(err, karte.ErrNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}

	m, err := uc.measurements.CreateMeasurement(ctx, karte.MeasurementInput{
		ClientID:   in.ClientID,
		Value:      in.Value,
		MeasuredAt: measuredAt,
		CreatedBy:  in.ActorID,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "measurement.create",
		Entity:   "measurement",
		EntityID: &m.ID,
		Metadata: map[string]any{"client_id": m.ClientID, "value": m.Value},
	})

	return m, nil
}
