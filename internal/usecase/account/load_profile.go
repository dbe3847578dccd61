package account

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/BruksfildServices01/salon-karte/internal/audit"
	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/httperr"
	"github.com/BruksfildServices01/salon-karte/internal/models"
)

var ErrNoSession = errors.New("no active session")

type LoadProfile struct {
	sessions Sessions
	users    karte.UserRepository
	audit    *audit.Dispatcher
}

func NewLoadProfile(
	sessions Sessions,
	users karte.UserRepository,
	audit *audit.Dispatcher,
) *LoadProfile {
	return &LoadProfile{
		sessions: sessions,
		users:    users,
		audit:    audit,
	}
}

// Execute returns the active profile of the session user. Any failure to
// load it signs the session out.
func (uc *LoadProfile) Execute(ctx context.Context) (*models.User, error) {
	sess := uc.sessions.Session()
	if sess == nil {
		return nil, ErrNoSession
	}
	id := sess.User.ID

	profile, err := uc.users.GetActiveUser(ctx, id)
	if err == nil {
		return profile, nil
	}

	if signOutErr := uc.sessions.SignOut(ctx); signOutErr != nil {
		log.Printf("account: forced sign out: %v", signOutErr)
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &id,
		Action:   "auth.forced_sign_out",
		Entity:   "session",
		EntityID: &id,
		Metadata: map[string]string{"reason": err.Error()},
	})

	if errors.Is(err, karte.ErrNotFound) {
		return nil, httperr.ErrBusiness("profile_not_found")
	}
	return nil, fmt.Errorf("load profile: %w", err)
}
