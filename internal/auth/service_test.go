package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-karte/internal/sessionslot"
)

type notification struct {
	event   Event
	session *Session
}

func newTestService(t *testing.T, slot sessionslot.Slot) *Service {
	t.Helper()
	if slot == nil {
		slot = sessionslot.NewMemory()
	}
	s, err := New(context.Background(), slot)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func collect(s *Service) (*Subscription, chan notification) {
	ch := make(chan notification, 16)
	sub := s.OnSessionChange(func(ev Event, sess *Session) {
		ch <- notification{event: ev, session: sess}
	})
	return sub, ch
}

func next(t *testing.T, ch chan notification) notification {
	t.Helper()
	select {
	case n := <-ch:
		return n
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for session notification")
	}
	return notification{}
}

func expectQuiet(t *testing.T, ch chan notification) {
	t.Helper()
	select {
	case n := <-ch:
		t.Fatalf("unexpected notification %s", n.event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSignInWithBuiltinCredentials(t *testing.T) {
	ctx := context.Background()
	slot := sessionslot.NewMemory()
	s := newTestService(t, slot)

	u, err := s.SignIn(ctx, "admin@salon.com", "admin123")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if u.ID != "mock-admin-id" {
		t.Fatalf("unexpected identity %q", u.ID)
	}
	sess := s.Session()
	if sess == nil || sess.User.ID != "mock-admin-id" || sess.User.Email != "admin@salon.com" {
		t.Fatalf("unexpected session %+v", sess)
	}
	raw, ok, _ := slot.Load(ctx)
	if !ok || string(raw) != `{"id":"mock-admin-id","email":"admin@salon.com"}` {
		t.Fatalf("slot not mirrored: %s", raw)
	}

	u, err = s.SignIn(ctx, "staff@salon.com", "staff123")
	if err != nil || u.ID != "mock-staff-id" {
		t.Fatalf("staff sign in: %v %+v", err, u)
	}
}

func TestSignInWrongPasswordLeavesSessionUnchanged(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, nil)

	_, err := s.SignIn(ctx, "admin@salon.com", "wrong")
	if !IsAuthError(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if err.Error() != "Invalid credentials" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if s.Session() != nil {
		t.Fatalf("failed sign in must not create a session")
	}

	if _, err := s.SignIn(ctx, "staff@salon.com", "staff123"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if _, err := s.SignIn(ctx, "admin@salon.com", "staff123"); !IsAuthError(err) {
		t.Fatalf("crossed credentials must fail, got %v", err)
	}
	if _, err := s.SignIn(ctx, "ADMIN@salon.com", "admin123"); !IsAuthError(err) {
		t.Fatalf("email match is exact, got %v", err)
	}
	if sess := s.Session(); sess == nil || sess.User.ID != "mock-staff-id" {
		t.Fatalf("session changed by failed sign in: %+v", sess)
	}
}

func TestSignUpAlwaysSucceeds(t *testing.T) {
	s := newTestService(t, nil)
	u, err := s.SignUp(context.Background(), "new@salon.com", "whatever")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if u.ID != NewUserID || u.Email != "new@salon.com" {
		t.Fatalf("unexpected identity %+v", u)
	}
	if sess := s.Session(); sess == nil || sess.User.ID != NewUserID {
		t.Fatalf("expected signed-in session, got %+v", sess)
	}
}

func TestSignOutClearsSessionAndSlot(t *testing.T) {
	ctx := context.Background()
	slot := sessionslot.NewMemory()
	s := newTestService(t, slot)

	if _, err := s.SignIn(ctx, "admin@salon.com", "admin123"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if err := s.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if s.Session() != nil {
		t.Fatalf("expected no session after sign out")
	}
	if _, ok, _ := slot.Load(ctx); ok {
		t.Fatalf("slot still holds a value after sign out")
	}
	if err := s.SignOut(ctx); err != nil {
		t.Fatalf("signing out twice must succeed: %v", err)
	}
}

func TestRestoresSessionFromSlot(t *testing.T) {
	ctx := context.Background()
	slot := sessionslot.NewMemory()
	_ = slot.Save(ctx, []byte(`{"id":"mock-staff-id","email":"staff@salon.com"}`))

	s := newTestService(t, slot)
	sess := s.Session()
	if sess == nil || sess.User.ID != "mock-staff-id" {
		t.Fatalf("expected restored session, got %+v", sess)
	}
}

func TestCorruptSlotIsDiscarded(t *testing.T) {
	ctx := context.Background()
	slot := sessionslot.NewMemory()
	_ = slot.Save(ctx, []byte(`not-json`))

	s := newTestService(t, slot)
	if s.Session() != nil {
		t.Fatalf("corrupt slot must start signed out")
	}
	if _, ok, _ := slot.Load(ctx); ok {
		t.Fatalf("corrupt slot value should be cleared")
	}
}

func TestListenerAfterSignUpFiresOnce(t *testing.T) {
	s := newTestService(t, nil)
	if _, err := s.SignUp(context.Background(), "new@salon.com", "pw"); err != nil {
		t.Fatalf("sign up: %v", err)
	}

	_, ch := collect(s)
	n := next(t, ch)
	if n.event != EventSignedIn {
		t.Fatalf("expected SIGNED_IN, got %s", n.event)
	}
	if n.session == nil || n.session.User.ID != NewUserID {
		t.Fatalf("unexpected session %+v", n.session)
	}
	expectQuiet(t, ch)
}

func TestNotificationIsDeferred(t *testing.T) {
	s := newTestService(t, nil)
	release := make(chan struct{})
	delivered := make(chan struct{})
	s.OnSessionChange(func(Event, *Session) {
		<-release
		close(delivered)
	})

	// a synchronous delivery would block SignIn on the held listener
	returned := make(chan struct{})
	go func() {
		s.SignIn(context.Background(), "admin@salon.com", "admin123")
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatalf("SignIn waited for its listener")
	}

	close(release)
	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatalf("listener never ran")
	}
}

func TestTransitionsDeliveredInOrderToAllListeners(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, nil)
	_, first := collect(s)
	_, second := collect(s)

	s.SignIn(ctx, "admin@salon.com", "admin123")
	s.SignOut(ctx)
	s.SignUp(ctx, "x@salon.com", "pw")

	for _, ch := range []chan notification{first, second} {
		want := []Event{EventSignedIn, EventSignedOut, EventSignedIn}
		for i, ev := range want {
			n := next(t, ch)
			if n.event != ev {
				t.Fatalf("notification %d: got %s want %s", i, n.event, ev)
			}
			if ev == EventSignedOut && n.session != nil {
				t.Fatalf("signed-out notification must carry no session")
			}
		}
	}
}

func TestFailedSignInDoesNotNotify(t *testing.T) {
	s := newTestService(t, nil)
	_, ch := collect(s)
	s.SignIn(context.Background(), "admin@salon.com", "nope")
	expectQuiet(t, ch)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, nil)
	sub, ch := collect(s)
	_, other := collect(s)

	sub.Unsubscribe()
	sub.Unsubscribe()
	s.SignIn(ctx, "admin@salon.com", "admin123")

	if n := next(t, other); n.event != EventSignedIn {
		t.Fatalf("remaining listener got %s", n.event)
	}
	expectQuiet(t, ch)
}

func TestPanickingListenerDoesNotStopOthers(t *testing.T) {
	s := newTestService(t, nil)
	s.OnSessionChange(func(Event, *Session) { panic("boom") })
	_, ch := collect(s)

	s.SignIn(context.Background(), "staff@salon.com", "staff123")
	if n := next(t, ch); n.event != EventSignedIn {
		t.Fatalf("unexpected event %s", n.event)
	}
}

func TestListenerMaySignOutReentrantly(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, nil)
	done := make(chan struct{})
	s.OnSessionChange(func(ev Event, _ *Session) {
		if ev == EventSignedIn {
			s.SignOut(ctx)
			return
		}
		close(done)
	})
	s.SignIn(ctx, "admin@salon.com", "admin123")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("reentrant sign out never notified")
	}
	if s.Session() != nil {
		t.Fatalf("expected signed out")
	}
}

type failingSlot struct{ sessionslot.Memory }

func (f *failingSlot) Save(context.Context, []byte) error { return errors.New("disk full") }

func TestSlotFailureDoesNotFailSignIn(t *testing.T) {
	s := newTestService(t, &failingSlot{})
	if _, err := s.SignIn(context.Background(), "admin@salon.com", "admin123"); err != nil {
		t.Fatalf("slot errors must not fail sign in: %v", err)
	}
	if s.Session() == nil {
		t.Fatalf("expected in-memory session")
	}
}

type outcomes []string

func (o *outcomes) ObserveAuth(outcome string) { *o = append(*o, outcome) }

func TestRecorderSeesOutcomes(t *testing.T) {
	ctx := context.Background()
	rec := &outcomes{}
	s, err := New(ctx, sessionslot.NewMemory(), WithRecorder(rec))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer s.Close()

	s.SignIn(ctx, "admin@salon.com", "bad")
	s.SignIn(ctx, "admin@salon.com", "admin123")
	s.SignOut(ctx)
	want := []string{"sign_in_failed", "sign_in", "sign_out"}
	if len(*rec) != len(want) {
		t.Fatalf("unexpected outcomes %v", *rec)
	}
	for i := range want {
		if (*rec)[i] != want[i] {
			t.Fatalf("unexpected outcomes %v", *rec)
		}
	}
}

// orderLog records recorder and listener calls in the order they happen.
type orderLog struct {
	mu      sync.Mutex
	entries []string
	delay   time.Duration
}

func (o *orderLog) add(entry string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.entries = append(o.entries, entry)
}

func (o *orderLog) snapshot() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.entries...)
}

// ObserveAuth runs after the transition is scheduled, so a slow recorder
// gives an eager worker time to deliver first.
func (o *orderLog) ObserveAuth(outcome string) {
	time.Sleep(o.delay)
	o.add("recorder:" + outcome)
}

func TestListenerRunsAfterCallCompletes(t *testing.T) {
	ctx := context.Background()
	order := &orderLog{delay: 50 * time.Millisecond}
	s, err := New(ctx, sessionslot.NewMemory(), WithRecorder(order))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer s.Close()

	ch := make(chan struct{}, 4)
	s.OnSessionChange(func(ev Event, _ *Session) {
		order.add("listener:" + string(ev))
		ch <- struct{}{}
	})

	waitListener := func() {
		t.Helper()
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("listener never ran")
		}
	}

	if _, err := s.SignIn(ctx, "admin@salon.com", "admin123"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	waitListener()
	if _, err := s.SignUp(ctx, "new@salon.com", "pw"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	waitListener()
	if err := s.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	waitListener()

	want := []string{
		"recorder:sign_in", "listener:" + string(EventSignedIn),
		"recorder:sign_up", "listener:" + string(EventSignedIn),
		"recorder:sign_out", "listener:" + string(EventSignedOut),
	}
	got := order.snapshot()
	if len(got) != len(want) {
		t.Fatalf("unexpected order %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order %v, want %v", got, want)
		}
	}
}

func TestUnreleasedDeliveryHoldsLaterOnes(t *testing.T) {
	n := newNotifier()
	defer n.close()

	got := make(chan Event, 2)
	sub := n.subscribe(func(ev Event, _ *Session) { got <- ev })

	first := n.scheduleTo(sub, EventSignedIn, &Session{})
	second := n.scheduleTo(sub, EventSignedOut, nil)
	n.release(second)
	select {
	case ev := <-got:
		t.Fatalf("%s delivered before the earlier transition was released", ev)
	case <-time.After(50 * time.Millisecond):
	}

	n.release(first)
	for _, want := range []Event{EventSignedIn, EventSignedOut} {
		select {
		case ev := <-got:
			if ev != want {
				t.Fatalf("got %s, want %s", ev, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}
