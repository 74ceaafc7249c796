// Package store provides durable storage of drawing sessions as named,
// ordered sequences of flattened page images.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when no session exists under the
// requested name. Callers branch on it with errors.Is; it is an expected
// outcome, not a failure of the store.
var ErrNotFound = errors.New("store: session not found")

// Session is the persisted record of a named drawing session. Pages holds
// one opaque encoded image per page, ordered by page position,
// white-backgrounded so eraser transparency never leaks into a persisted
// page.
type Session struct {
	Name    string
	SavedAt time.Time
	Pages   [][]byte
}

// Store is a durable key-value store of sessions keyed by name.
//
// Put overwrites any prior record with the same name and returns only
// after the write is durably committed. Get returns ErrNotFound for an
// unknown name.
type Store interface {
	Put(ctx context.Context, s *Session) error
	Get(ctx context.Context, name string) (*Session, error)
	Close() error
}
