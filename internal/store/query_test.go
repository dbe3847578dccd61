package store

import (
	"testing"
	"time"
)

func TestMeasurementsOrderedByMeasuredAt(t *testing.T) {
	s := New()
	rows := s.From(TableMeasurements).
		Eq("client_id", "client-1").
		OrderAsc("measured_at").
		All()

	wantValues := []float64{55.5, 54.8, 54.2}
	wantDays := []string{"2024-01-15", "2024-01-22", "2024-01-29"}
	if len(rows) != len(wantValues) {
		t.Fatalf("expected %d rows, got %d", len(wantValues), len(rows))
	}
	for i, row := range rows {
		if row["value"] != wantValues[i] {
			t.Fatalf("row %d: value %v, want %v", i, row["value"], wantValues[i])
		}
		if got := row.String("measured_at")[:10]; got != wantDays[i] {
			t.Fatalf("row %d: day %s, want %s", i, got, wantDays[i])
		}
	}

	desc := s.From(TableMeasurements).OrderDesc("measured_at").All()
	if desc[0]["value"] != 54.2 || desc[2]["value"] != 55.5 {
		t.Fatalf("unexpected descending order: %v", desc)
	}
}

func TestPredicatesComposeAsAnd(t *testing.T) {
	s := New()
	s.Insert(TableMeasurements, Record{
		"client_id":   "client-2",
		"type":        "weight",
		"value":       61.0,
		"measured_at": "2024-01-20T00:00:00.000Z",
	})

	rows := s.From(TableMeasurements).
		Eq("client_id", "client-1").
		Gte("measured_at", "2024-01-16").
		Lte("measured_at", "2024-01-29T23:59:59").
		All()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %v", len(rows), rows)
	}
	for _, row := range rows {
		if row.String("client_id") != "client-1" {
			t.Fatalf("equality predicate violated: %v", row)
		}
		at := row.String("measured_at")
		if at < "2024-01-16" || at > "2024-01-29T23:59:59" {
			t.Fatalf("range predicate violated: %v", row)
		}
	}
}

func TestSingleReturnsFirstOrNothing(t *testing.T) {
	s := New()
	row, ok := s.From(TableUsers).Eq("id", SeedAdminID).Eq("active", true).Single()
	if !ok || row.String("email") != "admin@salon.com" {
		t.Fatalf("expected admin user, got %v %v", row, ok)
	}

	row, ok = s.From(TableUsers).Eq("id", "nobody").Single()
	if ok || row != nil {
		t.Fatalf("expected empty single result, got %v", row)
	}
}

func TestAllNeverNil(t *testing.T) {
	s := New()
	rows := s.From(TableClients).Eq("name", "missing").All()
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", rows)
	}
	if rows := s.From(Table("unknown")).All(); rows == nil {
		t.Fatalf("unknown table must yield empty slice")
	}
}

func TestQueryBuilderIsImmutable(t *testing.T) {
	s := New()
	base := s.From(TableMeasurements).Eq("client_id", "client-1")
	narrow := base.Gte("value", 54.5)
	other := base.Lte("value", 54.5)

	if n := len(base.All()); n != 3 {
		t.Fatalf("base query changed: %d rows", n)
	}
	if n := len(narrow.All()); n != 2 {
		t.Fatalf("expected 2 rows >= 54.5, got %d", n)
	}
	if n := len(other.All()); n != 1 {
		t.Fatalf("expected 1 row <= 54.5, got %d", n)
	}
	if len(base.Filters()) != 1 || len(narrow.Filters()) != 2 {
		t.Fatalf("filters leaked between derived queries")
	}
}

func TestLastOrderWins(t *testing.T) {
	s := New()
	rows := s.From(TableMeasurements).OrderAsc("value").OrderDesc("value").All()
	if rows[0]["value"] != 55.5 {
		t.Fatalf("expected descending order from last Order call, got %v", rows[0]["value"])
	}
}

func TestOrderIsStableForTies(t *testing.T) {
	s := New(WithoutSeed())
	for _, name := range []string{"a", "b", "c"} {
		s.Insert(TableUsers, Record{"name": name, "role": "staff"})
	}
	rows := s.From(TableUsers).OrderAsc("role").All()
	for i, name := range []string{"a", "b", "c"} {
		if rows[i].String("name") != name {
			t.Fatalf("tie order not preserved: %v", rows)
		}
	}
}

func TestRangeOnMismatchedKindsNeverMatches(t *testing.T) {
	s := New()
	if n := len(s.From(TableMeasurements).Gte("value", "50").All()); n != 0 {
		t.Fatalf("string bound against numeric field must not match, got %d", n)
	}
	if n := len(s.From(TableMeasurements).Gte("missing", 1).All()); n != 0 {
		t.Fatalf("missing field must not match, got %d", n)
	}
}

func TestReadsAreCopies(t *testing.T) {
	s := New()
	row, _ := s.From(TableClients).Eq("id", "client-1").Single()
	row["name"] = "mutated"
	row["staff"].(Record)["name"] = "mutated"

	again, _ := s.From(TableClients).Eq("id", "client-1").Single()
	if again.String("name") != "田中 花子" {
		t.Fatalf("top-level field leaked: %v", again["name"])
	}
	if again["staff"].(Record)["name"] != "スタッフ" {
		t.Fatalf("nested field leaked: %v", again["staff"])
	}
}

func TestCompareNativeOrdering(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		a, b any
		want int
		ok   bool
	}{
		{1, 2.5, -1, true},
		{int64(3), uint8(3), 0, true},
		{"b", "a", 1, true},
		{false, true, -1, true},
		{true, true, 0, true},
		{t1.Add(time.Hour), t1, 1, true},
		{"1", 1, 0, false},
		{nil, nil, 0, false},
		{[]any{1}, []any{1}, 0, false},
	}
	for _, tc := range cases {
		got, ok := compare(tc.a, tc.b)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("compare(%v, %v) = %d,%v want %d,%v", tc.a, tc.b, got, ok, tc.want, tc.ok)
		}
	}
	if !equal(1, 1.0) || equal("1", 1) || !equal(nil, nil) {
		t.Fatalf("unexpected equality semantics")
	}
}
