package account

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/salon-karte/internal/audit"
	"github.com/BruksfildServices01/salon-karte/internal/auth"
	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
)

type SignInOutput struct {
	User auth.User
	Role karte.Role
}

type SignIn struct {
	sessions Sessions
	users    karte.UserRepository
	audit    *audit.Dispatcher
}

func NewSignIn(
	sessions Sessions,
	users karte.UserRepository,
	audit *audit.Dispatcher,
) *SignIn {
	return &SignIn{
		sessions: sessions,
		users:    users,
		audit:    audit,
	}
}

// Execute returns the stub's *auth.AuthError untouched on bad credentials.
// The role comes from the active profile, or the default role when none
// exists yet.
func (uc *SignIn) Execute(
	ctx context.Context,
	email string,
	password string,
) (*SignInOutput, error) {

	u, err := uc.sessions.SignIn(ctx, email, password)
	if err != nil {
		if auth.IsAuthError(err) {
			uc.audit.Dispatch(audit.Event{
				Action:   "auth.sign_in_failed",
				Entity:   "session",
				Metadata: map[string]string{"email": email},
			})
		}
		return nil, err
	}

	role := karte.DefaultRole
	profile, err := uc.users.GetActiveUser(ctx, u.ID)
	switch {
	case err == nil:
		role = karte.Role(profile.Role)
	case !errors.Is(err, karte.ErrNotFound):
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "auth.sign_in",
		Entity:   "session",
		EntityID: &u.ID,
	})

	return &SignInOutput{User: u, Role: role}, nil
}
