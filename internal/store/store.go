// Package store holds the in-memory record tables that stand in for the
// salon database, together with the chainable query builder over them.
//
// A Store is seeded once at construction and is never persisted: a
// process restart reverts to the seed rows. Every operation runs under a
// single mutex so calls execute in order without interleaving.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// OpRecorder is notified of every completed store operation.
type OpRecorder interface {
	ObserveStoreOp(op string, table string)
}

type Option func(*Store)

// WithClock overrides the timestamp source used by Insert.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id source used by Insert.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithoutSeed starts the store with empty tables.
func WithoutSeed() Option {
	return func(s *Store) { s.seed = false }
}

func WithRecorder(rec OpRecorder) Option {
	return func(s *Store) { s.recorder = rec }
}

type Store struct {
	mu       sync.Mutex
	tables   map[Table][]Record
	now      func() time.Time
	newID    func() string
	seed     bool
	recorder OpRecorder
}

func New(opts ...Option) *Store {
	s := &Store{
		tables: make(map[Table][]Record),
		now:    time.Now,
		newID:  func() string { return "mock-" + uuid.NewString() },
		seed:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed {
		for table, rows := range seedTables() {
			s.tables[table] = rows
		}
	}
	return s
}

// Insert appends a copy of data to table after assigning a fresh id and
// creation timestamp. data is either a single Record (or map) or a
// one-element slice of them. The stored copy is returned.
func (s *Store) Insert(table Table, data any) (Record, error) {
	rec, err := singleRecord(data)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := rec.Clone()
	stored[FieldID] = s.newID()
	stored[FieldCreatedAt] = FormatTime(s.now())
	s.tables[table] = append(s.tables[table], stored)

	s.observe("insert", table)
	return stored.Clone(), nil
}

// Update merges partial into the first record of table whose field equals
// value and returns partial unchanged. When nothing matches the table is
// left untouched and matched is false; this is not an error.
func (s *Store) Update(table Table, partial Record, field string, value any) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer s.observe("update", table)

	rows := s.tables[table]
	for i, row := range rows {
		current, present := row[field]
		if !present || !equal(current, value) {
			continue
		}
		merged := row.Clone()
		for k, v := range partial {
			merged[k] = cloneValue(v)
		}
		rows[i] = merged
		return partial, true
	}
	return partial, false
}

// Len returns the number of records held in table.
func (s *Store) Len(table Table) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tables[table])
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) observe(op string, table Table) {
	if s.recorder != nil {
		s.recorder.ObserveStoreOp(op, string(table))
	}
}

func singleRecord(data any) (Record, error) {
	switch v := data.(type) {
	case Record:
		if v == nil {
			return nil, ErrInvalidRecord
		}
		return v, nil
	case map[string]any:
		if v == nil {
			return nil, ErrInvalidRecord
		}
		return Record(v), nil
	case []Record:
		if len(v) != 1 {
			return nil, ErrInvalidRecord
		}
		return singleRecord(v[0])
	case []map[string]any:
		if len(v) != 1 {
			return nil, ErrInvalidRecord
		}
		return singleRecord(v[0])
	}
	return nil, ErrInvalidRecord
}
