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

// ======================================================
// INPUT
// ======================================================

type ClientInput struct {
	ActorID string

	Name           string
	Contact        string
	Notes          string
	PrimaryStaffID string
}

// ======================================================
// USE CASE
// ======================================================

type CreateClient struct {
	clients karte.ClientRepository
	users   karte.UserRepository
	audit   *audit.Dispatcher
}

func NewCreateClient(
	clients karte.ClientRepository,
	users karte.UserRepository,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		clients: clients,
		users:   users,
		audit:   audit,
	}
}

// Execute stores a new client. The acting user becomes the primary staff
// when none is given.
func (uc *CreateClient) Execute(
	ctx context.Context,
	in ClientInput,
) (*models.Client, error) {

	if strings.TrimSpace(in.PrimaryStaffID) == "" {
		in.PrimaryStaffID = in.ActorID
	}

	data, err := normalize(ctx, uc.users, in)
	if err != nil {
		return nil, err
	}

	c, err := uc.clients.CreateClient(ctx, data)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "client.create",
		Entity:   "client",
		EntityID: &c.ID,
		Metadata: map[string]string{"name": c.Name},
	})

	return c, nil
}

// normalize trims the input, turns blank optionals into nil and checks
// that the primary staff is an active user.
func normalize(
	ctx context.Context,
	users karte.UserRepository,
	in ClientInput,
) (karte.ClientInput, error) {

	out := karte.ClientInput{
		Name:  strings.TrimSpace(in.Name),
		Notes: strings.TrimSpace(in.Notes),
	}
	if out.Name == "" {
		return out, httperr.ErrBusiness("name_required")
	}

	if contact := strings.TrimSpace(in.Contact); contact != "" {
		out.Contact = &contact
	}

	if staffID := strings.TrimSpace(in.PrimaryStaffID); staffID != "" {
		if _, err := users.GetActiveUser(ctx, staffID); err != nil {
			if errors.Is(err, karte.ErrNotFound) {
				return out, httperr.ErrBusiness("staff_not_found")
			}
			return out, err
		}
		out.PrimaryStaffID = &staffID
	}

	return out, nil
}
