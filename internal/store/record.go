package store

import (
	"errors"
	"time"
)

// Record is one row of a table, keyed by field name.
type Record map[string]any

// Table names a sequence of records of one entity kind.
type Table string

const (
	TableUsers        Table = "users"
	TableClients      Table = "clients"
	TableVisits       Table = "visits"
	TableMeasurements Table = "measurements"
	TableAuditLogs    Table = "audit_logs"
)

const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
)

// TimestampLayout is the layout of every timestamp stored in a record.
// Fixed width in UTC so lexical order equals chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

var ErrInvalidRecord = errors.New("store: insert expects a record or a one-element record slice")

// FormatTime renders t the way the store writes timestamps.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

// String returns the field as a string, or "" when absent or not a string.
func (r Record) String(field string) string {
	s, _ := r[field].(string)
	return s
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case Record:
		return x.Clone()
	case map[string]any:
		return map[string]any(Record(x).Clone())
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), x...)
	default:
		return v
	}
}

func cloneRecords(in []Record) []Record {
	out := make([]Record, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
