package account

import (
	"context"

	"github.com/BruksfildServices01/salon-karte/internal/auth"
)

// Sessions is the part of the auth stub the account use cases drive.
type Sessions interface {
	Session() *auth.Session
	SignIn(ctx context.Context, email, password string) (auth.User, error)
	SignUp(ctx context.Context, email, password string) (auth.User, error)
	SignOut(ctx context.Context) error
}

var _ Sessions = (*auth.Service)(nil)
