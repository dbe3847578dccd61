package audit

import (
	"testing"

	"github.com/BruksfildServices01/salon-karte/internal/store"
)

func TestDispatcherWritesQueuedEvents(t *testing.T) {
	s := store.New(store.WithoutSeed())
	d := NewDispatcher(New(s), 8)

	uid, cid := "mock-admin-id", "client-1"
	d.Dispatch(Event{
		UserID:   &uid,
		Action:   "client.update",
		Entity:   "client",
		EntityID: &cid,
		Metadata: map[string]string{"name": "田中 花子"},
	})
	d.Dispatch(Event{Action: "auth.sign_out", Entity: "session"})
	d.Close()

	rows := s.From(store.TableAuditLogs).All()
	if len(rows) != 2 {
		t.Fatalf("expected 2 audit rows, got %d", len(rows))
	}
	first := rows[0]
	if first["user_id"] != uid || first["entity_id"] != cid || first["action"] != "client.update" {
		t.Fatalf("unexpected row %v", first)
	}
	if first["metadata"] != `{"name":"田中 花子"}` {
		t.Fatalf("unexpected metadata %v", first["metadata"])
	}
	if rows[1]["user_id"] != nil || rows[1]["metadata"] != "" {
		t.Fatalf("anonymous event should store nulls: %v", rows[1])
	}
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	s := store.New(store.WithoutSeed())
	d := NewDispatcher(New(s), 1)
	d.Close()
	d.Close()

	d.Dispatch(Event{Action: "late"})
	if n := s.Len(store.TableAuditLogs); n != 0 {
		t.Fatalf("closed dispatcher wrote %d rows", n)
	}
}
