package client

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/salon-karte/internal/audit"
	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/httperr"
	"github.com/BruksfildServices01/salon-karte/internal/models"
)

type UpdateClient struct {
	clients karte.ClientRepository
	users   karte.UserRepository
	audit   *audit.Dispatcher
}

func NewUpdateClient(
	clients karte.ClientRepository,
	users karte.UserRepository,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		clients: clients,
		users:   users,
		audit:   audit,
	}
}

// Execute replaces the editable fields of a client. A blank primary staff
// keeps the current one, or falls back to the actor when the client has
// none.
func (uc *UpdateClient) Execute(
	ctx context.Context,
	clientID string,
	in ClientInput,
) (*models.Client, error) {

	if strings.TrimSpace(in.PrimaryStaffID) == "" {
		current, err := uc.clients.GetClient(ctx, clientID)
		if err != nil {
			if errors.Is(err, karte.ErrNotFound) {
				return nil, httperr.ErrBusiness("client_not_found")
			}
			return nil, err
		}
		in.PrimaryStaffID = in.ActorID
		if current.PrimaryStaffID != nil {
			in.PrimaryStaffID = *current.PrimaryStaffID
		}
	}

	data, err := normalize(ctx, uc.users, in)
	if err != nil {
		return nil, err
	}

	if err := uc.clients.UpdateClient(ctx, clientID, data); err != nil {
		if errors.Is(err, karte.ErrNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "client.update",
		Entity:   "client",
		EntityID: &clientID,
	})

	return uc.clients.GetClient(ctx, clientID)
}
