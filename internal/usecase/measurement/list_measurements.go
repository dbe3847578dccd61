package measurement

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/httperr"
	"github.com/BruksfildServices01/salon-karte/internal/models"
	"github.com/BruksfildServices01/salon-karte/internal/timezone"
)

// DefaultRangeMonths is how far back a chart reaches without a from date.
const DefaultRangeMonths = 3

type ListMeasurementsInput struct {
	ClientID string
	From     string
	To       string
}

type ListMeasurementsOutput struct {
	From         time.Time
	To           time.Time
	Measurements []models.Measurement
}

type ListMeasurements struct {
	measurements karte.MeasurementRepository
	loc          *time.Location
	now          func() time.Time
}

func NewListMeasurements(
	measurements karte.MeasurementRepository,
	loc *time.Location,
	now func() time.Time,
) *ListMeasurements {
	if now == nil {
		now = time.Now
	}
	return &ListMeasurements{
		measurements: measurements,
		loc:          loc,
		now:          now,
	}
}

// Execute returns one client's weights, oldest first. Both dates are
// inclusive; to covers its whole day. Missing dates default to the last
// three months up to today.
func (uc *ListMeasurements) Execute(
	ctx context.Context,
	in ListMeasurementsInput,
) (*ListMeasurementsOutput, error) {

	if in.ClientID == "" {
		return nil, httperr.ErrBusiness("client_required")
	}

	today := uc.now().In(uc.loc)
	y, m, d := today.Date()
	to := time.Date(y, m, d, 0, 0, 0, 0, uc.loc)
	from := to.AddDate(0, -DefaultRangeMonths, 0)

	var err error
	if in.From != "" {
		if from, err = timezone.ParseDate(in.From, uc.loc); err != nil {
			return nil, httperr.ErrBusiness("invalid_from")
		}
	}
	if in.To != "" {
		if to, err = timezone.ParseDate(in.To, uc.loc); err != nil {
			return nil, httperr.ErrBusiness("invalid_to")
		}
	}
	if from.After(to) {
		return nil, httperr.ErrBusiness("invalid_range")
	}
	to = timezone.EndOfDay(to)

	ms, err := uc.measurements.ListMeasurements(ctx, karte.MeasurementRange{
		ClientID: in.ClientID,
		From:     from,
		To:       to,
	})
	if err != nil {
		return nil, err
	}

	return &ListMeasurementsOutput{From: from, To: to, Measurements: ms}, nil
}
