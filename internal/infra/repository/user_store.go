package repository

import (
	"context"

	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/models"
	"github.com/BruksfildServices01/salon-karte/internal/store"
)

type UserStoreRepository struct {
	store *store.Store
}

func NewUserStoreRepository(s *store.Store) *UserStoreRepository {
	return &UserStoreRepository{store: s}
}

var _ karte.UserRepository = (*UserStoreRepository)(nil)

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *UserStoreRepository) GetActiveUser(
	_ context.Context,
	id string,
) (*models.User, error) {

	rec, ok := r.store.From(store.TableUsers).
		Eq(store.FieldID, id).
		Eq("active", true).
		Single()
	if !ok {
		return nil, karte.ErrNotFound
	}

	u, err := decode[models.User](rec)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserStoreRepository) ListActiveStaff(
	_ context.Context,
) ([]models.User, error) {

	rows := r.store.From(store.TableUsers).
		Eq("active", true).
		OrderAsc("name").
		All()
	return decodeAll[models.User](rows)
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *UserStoreRepository) CreateUser(
	_ context.Context,
	in karte.UserInput,
) (*models.User, error) {

	role := in.Role
	if role == "" {
		role = karte.DefaultRole
	}

	rec, err := r.store.Insert(store.TableUsers, store.Record{
		"email":  in.Email,
		"name":   in.Name,
		"role":   string(role),
		"active": in.Active,
	})
	if err != nil {
		return nil, err
	}

	u, err := decode[models.User](rec)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
