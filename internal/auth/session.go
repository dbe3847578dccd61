package auth

import (
	"errors"
)

// User is the identity held by a session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Session struct {
	User User `json:"user"`
}

// Event tags a session transition.
type Event string

const (
	EventSignedIn  Event = "SIGNED_IN"
	EventSignedOut Event = "SIGNED_OUT"
)

// NewUserID is the placeholder identity every sign-up receives.
const NewUserID = "mock-new-user-id"

// AuthError is the only failure the auth stub reports: a wrong email and
// password pair.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func errInvalidCredentials() error {
	return &AuthError{Message: "Invalid credentials"}
}

func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
