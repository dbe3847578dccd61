package audit

import (
	"github.com/goccy/go-json"

	"github.com/BruksfildServices01/salon-karte/internal/store"
)

type Logger struct {
	store *store.Store
}

func New(s *store.Store) *Logger {
	return &Logger{store: s}
}

func (l *Logger) Log(
	userID *string,
	action string,
	entity string,
	entityID *string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	_, err := l.store.Insert(store.TableAuditLogs, store.Record{
		"user_id":   optional(userID),
		"action":    action,
		"entity":    entity,
		"entity_id": optional(entityID),
		"metadata":  metaJSON,
	})
	return err
}

func optional(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
