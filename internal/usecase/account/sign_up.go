package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-karte/internal/audit"
	"github.com/BruksfildServices01/salon-karte/internal/auth"
	"github.com/BruksfildServices01/salon-karte/internal/domain/karte"
	"github.com/BruksfildServices01/salon-karte/internal/httperr"
	"github.com/BruksfildServices01/salon-karte/internal/models"
	"github.com/BruksfildServices01/salon-karte/internal/validators"
)

type SignUpInput struct {
	Email    string
	Password string
	Name     string
}

type SignUpOutput struct {
	User    auth.User
	Profile *models.User
}

type SignUp struct {
	sessions    Sessions
	users       karte.UserRepository
	audit       *audit.Dispatcher
	checkDomain bool
}

func NewSignUp(
	sessions Sessions,
	users karte.UserRepository,
	audit *audit.Dispatcher,
	checkDomain bool,
) *SignUp {
	return &SignUp{
		sessions:    sessions,
		users:       users,
		audit:       audit,
		checkDomain: checkDomain,
	}
}

// Execute signs up with the stub and then creates an active staff profile.
// The profile receives its own store id, so it is not the id of the
// session identity.
func (uc *SignUp) Execute(
	ctx context.Context,
	in SignUpInput,
) (*SignUpOutput, error) {

	email := strings.TrimSpace(in.Email)
	name := strings.TrimSpace(in.Name)

	if !validators.IsEmail(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if uc.checkDomain && !validators.IsEmailDomainValid(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}
	if in.Password == "" {
		return nil, httperr.ErrBusiness("password_required")
	}
	if name == "" {
		return nil, httperr.ErrBusiness("name_required")
	}

	u, err := uc.sessions.SignUp(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}

	profile, err := uc.users.CreateUser(ctx, karte.UserInput{
		Email:  email,
		Name:   name,
		Role:   karte.DefaultRole,
		Active: true,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "auth.sign_up",
		Entity:   "user",
		EntityID: &profile.ID,
		Metadata: map[string]string{"email": email},
	})

	return &SignUpOutput{User: u, Profile: profile}, nil
}
