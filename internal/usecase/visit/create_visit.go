package visit

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/salon-karte/internal/audit"
	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/httperr"
	"github.com/BruksfildServices01/salon-karte/internal/models"
	"github.com/BruksfildServices01/salon-karte/internal/validators"
)

type VisitInput struct {
	ActorID string

	ClientID    string
	VisitDate   string
	ServiceMenu string
	Notes       string
}

type CreateVisit struct {
	visits  karte.VisitRepository
	clients karte.ClientRepository
	audit   *audit.Dispatcher
}

func NewCreateVisit(
	visits karte.VisitRepository,
	clients karte.ClientRepository,
	audit *audit.Dispatcher,
) *CreateVisit {
	return &CreateVisit{
		visits:  visits,
		clients: clients,
		audit:   audit,
	}
}

// Execute records a visit written by the acting user.
func (uc *CreateVisit) Execute(
	ctx context.Context,
	in VisitInput,
) (*models.Visit, error) {

	if err := validate(in); err != nil {
		return nil, err
	}

	if _, err := uc.clients.GetClient(ctx, in.ClientID); err != nil {
		if errors.Is(err, karte.ErrNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}

	v, err := uc.visits.CreateVisit(ctx, karte.VisitInput{
		ClientID:    in.ClientID,
		VisitDate:   in.VisitDate,
		ServiceMenu: strings.TrimSpace(in.ServiceMenu),
		Notes:       in.Notes,
		CreatedBy:   in.ActorID,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "visit.create",
		Entity:   "visit",
		EntityID: &v.ID,
		Metadata: map[string]string{"client_id": v.ClientID, "visit_date": v.VisitDate},
	})

	return v, nil
}

func validate(in VisitInput) error {
	if !validators.IsDate(in.VisitDate) {
		return httperr.ErrBusiness("invalid_visit_date")
	}
	if !karte.IsKnownServiceMenu(in.ServiceMenu) {
		return httperr.ErrBusiness("invalid_service_menu")
	}
	return nil
}
