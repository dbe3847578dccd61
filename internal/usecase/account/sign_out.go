package account

import (
	"context"

	"github.com/BruksfildServices01/salon-karte/internal/audit"
)

type SignOut struct {
	sessions Sessions
	audit    *audit.Dispatcher
}

func NewSignOut(sessions Sessions, audit *audit.Dispatcher) *SignOut {
	return &SignOut{sessions: sessions, audit: audit}
}

// Execute succeeds when already signed out.
func (uc *SignOut) Execute(ctx context.Context) error {
	ev := audit.Event{Action: "auth.sign_out", Entity: "session"}
	if sess := uc.sessions.Session(); sess != nil {
		id := sess.User.ID
		ev.UserID = &id
		ev.EntityID = &id
	}

	if err := uc.sessions.SignOut(ctx); err != nil {
		return err
	}

	uc.audit.Dispatch(ev)
	return nil
}
