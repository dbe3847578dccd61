// Package auth simulates session-based sign-in without a credential store.
//
// Exactly two credential pairs are recognized; sign-up accepts anything
// and hands out a placeholder identity. The signed-in identity is mirrored
// to a session slot so a restarted process comes back signed in.
package auth

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-karte/internal/sessionslot"
	"github.com/BruksfildServices01/salon-karte/internal/store"
)

// Recorder is notified of every auth outcome ("sign_in", "sign_in_failed",
// "sign_up", "sign_out", "restore").
type Recorder interface {
	ObserveAuth(outcome string)
}

type credential struct {
	email string
	hash  []byte
	user  User
}

var builtinCredentials = []struct {
	email, password, id string
}{
	{"admin@salon.com", "admin123", store.SeedAdminID},
	{"staff@salon.com", "staff123", store.SeedStaffID},
}

type Service struct {
	mu          sync.Mutex
	session     *Session
	slot        sessionslot.Slot
	credentials []credential
	notifier    *notifier
	recorder    Recorder
}

type Option func(*Service)

func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// New builds the stub and restores a signed-in state when slot holds an
// identity. An unreadable slot value is logged, cleared and ignored.
func New(ctx context.Context, slot sessionslot.Slot, opts ...Option) (*Service, error) {
	s := &Service{slot: slot}
	for _, opt := range opts {
		opt(s)
	}

	for _, c := range builtinCredentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.password), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("auth: hash builtin credential: %w", err)
		}
		s.credentials = append(s.credentials, credential{
			email: c.email,
			hash:  hash,
			user:  User{ID: c.id, Email: c.email},
		})
	}

	raw, ok, err := slot.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth: load session slot: %w", err)
	}
	if ok {
		var u User
		if err := json.Unmarshal(raw, &u); err != nil || u.ID == "" {
			log.Printf("auth: discarding unreadable session slot value: %v", err)
			if err := slot.Clear(ctx); err != nil {
				log.Printf("auth: clear session slot: %v", err)
			}
		} else {
			s.session = &Session{User: u}
			s.observe("restore")
		}
	}

	s.notifier = newNotifier()
	return s, nil
}

// Session returns the current session, or nil when signed out.
func (s *Service) Session() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.clone()
}

// OnSessionChange registers l for future transitions. When a session is
// active, l alone also receives one deferred SIGNED_IN for it.
func (s *Service) OnSessionChange(l Listener) *Subscription {
	var q *queued
	defer func() { s.notifier.release(q) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	sub := s.notifier.subscribe(l)
	if s.session != nil {
		q = s.notifier.scheduleTo(sub, EventSignedIn, s.session.clone())
	}
	return sub
}

// SignIn accepts one of the two builtin credential pairs. Any other pair
// yields an *AuthError and leaves the session as it was.
func (s *Service) SignIn(ctx context.Context, email, password string) (User, error) {
	var q *queued
	defer func() { s.notifier.release(q) }()

	var matched *credential
	for i := range s.credentials {
		c := &s.credentials[i]
		if c.email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil {
			matched = c
		}
		break
	}
	if matched == nil {
		s.observe("sign_in_failed")
		return User{}, errInvalidCredentials()
	}

	q = s.signIn(ctx, matched.user)
	s.observe("sign_in")
	return matched.user, nil
}

// SignUp always succeeds with the placeholder identity NewUserID. Creating
// the matching profile row is the caller's job.
func (s *Service) SignUp(ctx context.Context, email, _ string) (User, error) {
	var q *queued
	defer func() { s.notifier.release(q) }()

	u := User{ID: NewUserID, Email: email}
	q = s.signIn(ctx, u)
	s.observe("sign_up")
	return u, nil
}

// SignOut clears the session and the slot. It does not fail: slot errors
// are logged.
func (s *Service) SignOut(ctx context.Context) error {
	var q *queued
	defer func() { s.notifier.release(q) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	if err := s.slot.Clear(ctx); err != nil {
		log.Printf("auth: clear session slot: %v", err)
	}
	q = s.notifier.broadcast(EventSignedOut, nil)
	s.observe("sign_out")
	return nil
}

// Close delivers pending notifications and stops the notifier.
func (s *Service) Close() {
	s.notifier.close()
}

// signIn sets the session and schedules SIGNED_IN. The caller releases the
// returned delivery once its own work is done.
func (s *Service) signIn(ctx context.Context, u User) *queued {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &Session{User: u}
	if raw, err := json.Marshal(u); err != nil {
		log.Printf("auth: encode session: %v", err)
	} else if err := s.slot.Save(ctx, raw); err != nil {
		log.Printf("auth: save session slot: %v", err)
	}
	return s.notifier.broadcast(EventSignedIn, s.session.clone())
}

func (s *Service) observe(outcome string) {
	if s.recorder != nil {
		s.recorder.ObserveAuth(outcome)
	}
}
