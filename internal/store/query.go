package store

import "sort"

type Op string

const (
	OpEq  Op = "eq"
	OpGte Op = "gte"
	OpLte Op = "lte"
)

// Filter is a single predicate attached to a query.
type Filter struct {
	Op    Op
	Field string
	Value any
}

type OrderBy struct {
	Field     string
	Ascending bool
}

// Query is an immutable read query against one table. Each builder method
// returns a new Query; nothing runs until All or Single is called.
type Query struct {
	store   *Store
	table   Table
	filters []Filter
	order   *OrderBy
}

// From starts a query against table.
func (s *Store) From(table Table) Query {
	return Query{store: s, table: table}
}

func (q Query) Eq(field string, value any) Query {
	return q.where(Filter{Op: OpEq, Field: field, Value: value})
}

func (q Query) Gte(field string, value any) Query {
	return q.where(Filter{Op: OpGte, Field: field, Value: value})
}

func (q Query) Lte(field string, value any) Query {
	return q.where(Filter{Op: OpLte, Field: field, Value: value})
}

// Order sets the single ordering of the query. A later call replaces an
// earlier one.
func (q Query) Order(field string, ascending bool) Query {
	q.order = &OrderBy{Field: field, Ascending: ascending}
	return q
}

func (q Query) OrderAsc(field string) Query  { return q.Order(field, true) }
func (q Query) OrderDesc(field string) Query { return q.Order(field, false) }

func (q Query) Table() Table { return q.table }

func (q Query) Filters() []Filter {
	return append([]Filter(nil), q.filters...)
}

// All returns every matching record in order. The result is never nil.
func (q Query) All() []Record {
	return q.run()
}

// Single returns the first matching record; ok is false when nothing
// matches.
func (q Query) Single() (Record, bool) {
	rows := q.run()
	if len(rows) == 0 {
		return nil, false
	}
	return rows[0], true
}

func (q Query) where(f Filter) Query {
	filters := make([]Filter, len(q.filters), len(q.filters)+1)
	copy(filters, q.filters)
	q.filters = append(filters, f)
	return q
}

func (q Query) run() []Record {
	s := q.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := append([]Record(nil), s.tables[q.table]...)
	for _, f := range q.filters {
		rows = applyFilter(rows, f)
	}

	if q.order != nil {
		field, asc := q.order.Field, q.order.Ascending
		sort.SliceStable(rows, func(i, j int) bool {
			c, ok := compare(rows[i][field], rows[j][field])
			if !ok {
				return false
			}
			if asc {
				return c < 0
			}
			return c > 0
		})
	}

	s.observe("select", q.table)
	return cloneRecords(rows)
}

func applyFilter(rows []Record, f Filter) []Record {
	out := rows[:0:0]
	for _, row := range rows {
		v, present := row[f.Field]
		if present && matches(f, v) {
			out = append(out, row)
		}
	}
	return out
}

func matches(f Filter, v any) bool {
	switch f.Op {
	case OpEq:
		return equal(v, f.Value)
	case OpGte:
		c, ok := compare(v, f.Value)
		return ok && c >= 0
	case OpLte:
		c, ok := compare(v, f.Value)
		return ok && c <= 0
	}
	return false
}
