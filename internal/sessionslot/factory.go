package sessionslot

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/salon-karte/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-karte/internal/db"
)

// Open selects a Slot implementation from cfg.SessionSlot:
//
//	memory   process memory only
//	file     JSON document at cfg.SessionSlotPath (default)
//	redis    key "salon-karte:mockUser" at cfg.RedisURL
//	postgres session_slots table at cfg.DBUrl
//
// The returned close func releases backend connections and is never nil.
func Open(ctx context.Context, cfg *config.Config) (Slot, func() error, error) {
	noop := func() error { return nil }

	switch cfg.SessionSlot {
	case config.SlotMemory:
		return NewMemory(), noop, nil
	case config.SlotFile:
		f, err := NewFile(cfg.SessionSlotPath)
		if err != nil {
			return nil, noop, err
		}
		return f, noop, nil
	case config.SlotRedis:
		r, err := DialRedis(ctx, cfg.RedisURL, "salon-karte:")
		if err != nil {
			return nil, noop, err
		}
		return r, r.Close, nil
	case config.SlotPostgres:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return nil, noop, err
		}
		p := NewPostgres(db)
		return p, p.Close, nil
	default:
		return nil, noop, fmt.Errorf("sessionslot: unknown backend %q", cfg.SessionSlot)
	}
}
