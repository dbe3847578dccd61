package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	loc := Location("Not/AZone")
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).In(loc)
	if _, offset := now.Zone(); offset != 9*60*60 {
		t.Fatalf("expected +09:00 fallback, got offset %d", offset)
	}
	if IsValid("") {
		t.Fatalf("empty zone must be invalid")
	}
}

func TestParseDateAndEndOfDay(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	d, err := ParseDate("2024-01-29", loc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := d.UTC().Format(time.RFC3339); got != "2024-01-28T15:00:00Z" {
		t.Fatalf("unexpected instant %s", got)
	}
	end := EndOfDay(d)
	if got := end.UTC().Format("2006-01-02T15:04:05.000Z"); got != "2024-01-29T14:59:59.999Z" {
		t.Fatalf("unexpected end of day %s", got)
	}
	if _, err := ParseDate("2024/01/29", loc); err == nil {
		t.Fatalf("expected layout error")
	}
}
