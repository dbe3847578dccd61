package repository

import (
	"context"

	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/models"
	"github.com/BruksfildServices01/salon-karte/internal/store"
)

type VisitStoreRepository struct {
	store *store.Store
}

func NewVisitStoreRepository(s *store.Store) *VisitStoreRepository {
	return &VisitStoreRepository{store: s}
}

var _ karte.VisitRepository = (*VisitStoreRepository)(nil)

// ListVisits returns visits by visit date, newest first. Search matches the
// client name or the service menu.
func (r *VisitStoreRepository) ListVisits(
	_ context.Context,
	f karte.VisitFilter,
) ([]models.Visit, error) {

	q := r.store.From(store.TableVisits)
	if f.ClientID != "" {
		q = q.Eq("client_id", f.ClientID)
	}
	rows := q.OrderDesc("visit_date").All()

	clients := nameIndex(r.store, store.TableClients)
	staff := nameIndex(r.store, store.TableUsers)

	out := make([]store.Record, 0, len(rows))
	for _, row := range rows {
		row = withVisitNames(row, clients, staff)
		if f.Search != "" &&
			!containsFold(clients[row.String("client_id")], f.Search) &&
			!containsFold(row.String("service_menu"), f.Search) {
			continue
		}
		out = append(out, row)
	}
	return decodeAll[models.Visit](out)
}

func (r *VisitStoreRepository) CreateVisit(
	_ context.Context,
	in karte.VisitInput,
) (*models.Visit, error) {

	rec, err := r.store.Insert(store.TableVisits, store.Record{
		"client_id":    in.ClientID,
		"visit_date":   in.VisitDate,
		"service_menu": in.ServiceMenu,
		"notes":        in.Notes,
		"created_by":   in.CreatedBy,
	})
	if err != nil {
		return nil, err
	}

	rec = withVisitNames(rec,
		nameIndex(r.store, store.TableClients),
		nameIndex(r.store, store.TableUsers),
	)
	v, err := decode[models.Visit](rec)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// UpdateVisit rewrites the editable fields. Author and client stay as
// recorded at creation.
func (r *VisitStoreRepository) UpdateVisit(
	_ context.Context,
	id string,
	in karte.VisitInput,
) error {

	partial := store.Record{
		"visit_date":   in.VisitDate,
		"service_menu": in.ServiceMenu,
		"notes":        in.Notes,
	}
	if _, matched := r.store.Update(store.TableVisits, partial, store.FieldID, id); !matched {
		return karte.ErrNotFound
	}
	return nil
}

func withVisitNames(row store.Record, clients, staff map[string]string) store.Record {
	row["client"] = nameRef(clients, row.String("client_id"))
	row["staff"] = nameRef(staff, row.String("created_by"))
	return row
}
