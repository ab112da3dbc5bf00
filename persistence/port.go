// Package persistence provides the byte-store capability behind the
// state store: a single fixed key in a local key/value store, plus a
// best-effort watch for writes made by other instances.
package persistence

import (
	"context"
	"errors"
)

// StateKey is the fixed key the serialized application state lives under.
const StateKey = "valentine-app-state"

// ErrNotFound reports that nothing has been persisted yet.
var ErrNotFound = errors.New("persistence: state not found")

// Port is the capability injected into the state store. Save is
// fire-and-forget from the caller's perspective: failures are reported
// but never fatal.
type Port interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Close() error
}

// Watcher is implemented by ports that can report external writes to
// the state key. Notifications are best-effort and arrive on their own
// goroutine; fn receives the full serialized payload.
type Watcher interface {
	Watch(ctx context.Context, fn func(data []byte)) error
}
