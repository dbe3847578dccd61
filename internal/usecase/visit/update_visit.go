package visit

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/salon-karte/internal/audit"
	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/httperr"
)

type UpdateVisit struct {
	visits karte.VisitRepository
	audit  *audit.Dispatcher
}

func NewUpdateVisit(
	visits karte.VisitRepository,
	audit *audit.Dispatcher,
) *UpdateVisit {
	return &UpdateVisit{
		visits: visits,
		audit:  audit,
	}
}

// Execute rewrites date, menu and notes. The client and author of a visit
// never change.
func (uc *UpdateVisit) Execute(
	ctx context.Context,
	visitID string,
	in VisitInput,
) error {

	if err := validate(in); err != nil {
		return err
	}

	err := uc.visits.UpdateVisit(ctx, visitID, karte.VisitInput{
		VisitDate:   in.VisitDate,
		ServiceMenu: strings.TrimSpace(in.ServiceMenu),
		Notes:       in.Notes,
	})
	if errors.Is(err, karte.ErrNotFound) {
		return httperr.ErrBusiness("visit_not_found")
	}
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "visit.update",
		Entity:   "visit",
		EntityID: &visitID,
	})
	return nil
}
