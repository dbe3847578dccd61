package repository

import (
	"context"

	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/models"
	"github.com/BruksfildServices01/salon-karte/internal/store"
)

type ClientStoreRepository struct {
	store *store.Store
}

func NewClientStoreRepository(s *store.Store) *ClientStoreRepository {
	return &ClientStoreRepository{store: s}
}

var _ karte.ClientRepository = (*ClientStoreRepository)(nil)

// --------------------------------------------------
// Reads
// --------------------------------------------------

// ListClients returns clients newest first. search matches name or contact,
// case-insensitively.
func (r *ClientStoreRepository) ListClients(
	_ context.Context,
	search string,
) ([]models.Client, error) {

	rows := r.store.From(store.TableClients).
		OrderDesc(store.FieldCreatedAt).
		All()

	staff := nameIndex(r.store, store.TableUsers)

	out := make([]store.Record, 0, len(rows))
	for _, row := range rows {
		if search != "" &&
			!containsFold(row.String("name"), search) &&
			!containsFold(row.String("contact"), search) {
			continue
		}
		out = append(out, withStaffName(row, staff))
	}
	return decodeAll[models.Client](out)
}

// ListClientNames returns every client ordered by name, for pickers.
func (r *ClientStoreRepository) ListClientNames(
	_ context.Context,
) ([]models.Client, error) {

	rows := r.store.From(store.TableClients).
		OrderAsc("name").
		All()
	staff := nameIndex(r.store, store.TableUsers)
	for i, row := range rows {
		rows[i] = withStaffName(row, staff)
	}
	return decodeAll[models.Client](rows)
}

func (r *ClientStoreRepository) GetClient(
	_ context.Context,
	id string,
) (*models.Client, error) {

	row, ok := r.store.From(store.TableClients).
		Eq(store.FieldID, id).
		Single()
	if !ok {
		return nil, karte.ErrNotFound
	}

	c, err := decode[models.Client](withStaffName(row, nameIndex(r.store, store.TableUsers)))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *ClientStoreRepository) CreateClient(
	ctx context.Context,
	in karte.ClientInput,
) (*models.Client, error) {

	rec, err := r.store.Insert(store.TableClients, clientRecord(in))
	if err != nil {
		return nil, err
	}
	return r.GetClient(ctx, rec.String(store.FieldID))
}

func (r *ClientStoreRepository) UpdateClient(
	_ context.Context,
	id string,
	in karte.ClientInput,
) error {

	if _, matched := r.store.Update(store.TableClients, clientRecord(in), store.FieldID, id); !matched {
		return karte.ErrNotFound
	}
	return nil
}

func clientRecord(in karte.ClientInput) store.Record {
	return store.Record{
		"name":             in.Name,
		"contact":          optionalString(in.Contact),
		"notes":            in.Notes,
		"primary_staff_id": optionalString(in.PrimaryStaffID),
	}
}

// withStaffName replaces the embedded staff name with the one resolved
// from primary_staff_id.
func withStaffName(row store.Record, staff map[string]string) store.Record {
	row["staff"] = nameRef(staff, row.String("primary_staff_id"))
	return row
}
