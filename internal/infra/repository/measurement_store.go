package repository

import (
	"context"

	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/models"
	"github.com/BruksfildServices01/salon-karte/internal/store"
)

type MeasurementStoreRepository struct {
	store *store.Store
}

func NewMeasurementStoreRepository(s *store.Store) *MeasurementStoreRepository {
	return &MeasurementStoreRepository{store: s}
}

var _ karte.MeasurementRepository = (*MeasurementStoreRepository)(nil)

// ListMeasurements returns the client's weight series, oldest first.
func (r *MeasurementStoreRepository) ListMeasurements(
	_ context.Context,
	rg karte.MeasurementRange,
) ([]models.Measurement, error) {

	q := r.store.From(store.TableMeasurements).
		Eq("client_id", rg.ClientID).
		Eq("type", karte.MeasurementTypeWeight)
	if !rg.From.IsZero() {
		q = q.Gte("measured_at", store.FormatTime(rg.From))
	}
	if !rg.To.IsZero() {
		q = q.Lte("measured_at", store.FormatTime(rg.To))
	}
	rows := q.OrderAsc("measured_at").All()

	clients := nameIndex(r.store, store.TableClients)
	for i, row := range rows {
		rows[i] = withClientName(row, clients)
	}
	return decodeAll[models.Measurement](rows)
}

func (r *MeasurementStoreRepository) CreateMeasurement(
	_ context.Context,
	in karte.MeasurementInput,
) (*models.Measurement, error) {

	if err := karte.ValidateWeight(in.Value); err != nil {
		return nil, err
	}

	rec, err := r.store.Insert(store.TableMeasurements, store.Record{
		"client_id":   in.ClientID,
		"type":        karte.MeasurementTypeWeight,
		"value":       in.Value,
		"measured_at": store.FormatTime(in.MeasuredAt),
		"created_by":  in.CreatedBy,
	})
	if err != nil {
		return nil, err
	}

	m, err := decode[models.Measurement](withClientName(rec, nameIndex(r.store, store.TableClients)))
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func withClientName(row store.Record, clients map[string]string) store.Record {
	row["client"] = nameRef(clients, row.String("client_id"))
	return row
}
