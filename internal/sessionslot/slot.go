// Package sessionslot provides the durable key-value slot that mirrors the
// signed-in identity across process restarts. Exactly one value is kept,
// under Key.
package sessionslot

import "context"

// Key is the well-known name the identity is stored under.
const Key = "mockUser"

// Slot persists one opaque value. Load reports ok=false when the slot is
// empty.
type Slot interface {
	Load(ctx context.Context) (value []byte, ok bool, err error)
	Save(ctx context.Context, value []byte) error
	Clear(ctx context.Context) error
}
