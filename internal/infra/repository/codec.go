package repository

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/BruksfildServices01/salon-karte/internal/store"
)

// decode maps a store record onto a model through its json tags.
func decode[T any](rec store.Record) (T, error) {
	var out T
	b, err := json.Marshal(rec)
	if err != nil {
		return out, fmt.Errorf("encode record: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("decode record: %w", err)
	}
	return out, nil
}

func decodeAll[T any](recs []store.Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		v, err := decode[T](rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// nameIndex maps id -> name for every row of table.
func nameIndex(s *store.Store, table store.Table) map[string]string {
	rows := s.From(table).All()
	idx := make(map[string]string, len(rows))
	for _, row := range rows {
		idx[row.String(store.FieldID)] = row.String("name")
	}
	return idx
}

// nameRef builds the nested {"name": ...} value for id, or nil when id is
// unknown.
func nameRef(idx map[string]string, id string) store.Record {
	name, ok := idx[id]
	if !ok {
		return nil
	}
	return store.Record{"name": name}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func optionalString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
