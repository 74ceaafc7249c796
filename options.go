package whiteboard

import "github.com/WOWitsaQT/whiteboard/store"

// Option configures a Board during creation.
//
// Example:
//
//	// Headless board with an in-memory store
//	b := whiteboard.NewBoard(vp, whiteboard.WithStore(store.NewMemory()))
type Option func(*boardOptions)

// boardOptions holds optional configuration for Board creation.
type boardOptions struct {
	store           store.Store
	margin          float64
	historyListener func(canUndo, canRedo bool)
}

// defaultOptions returns the default board options.
func defaultOptions() boardOptions {
	return boardOptions{
		margin: DefaultMargin,
	}
}

// WithStore sets the durable session store used by Save and Load.
// Without a store, Save and Load fail with ErrNoStore.
func WithStore(s store.Store) Option {
	return func(o *boardOptions) {
		o.store = s
	}
}

// WithMargin sets the logical-unit margin subtracted from the container
// before fitting a page. Values below zero are treated as zero.
func WithMargin(margin float64) Option {
	return func(o *boardOptions) {
		if margin < 0 {
			margin = 0
		}
		o.margin = margin
	}
}

// WithHistoryListener registers a callback invoked whenever undo/redo
// availability may have changed, with the new enablement for the active
// page. UI glue uses this to enable or disable its undo/redo controls.
//
// The listener is called synchronously with the board's internal lock
// held; it must not call back into the Board.
func WithHistoryListener(fn func(canUndo, canRedo bool)) Option {
	return func(o *boardOptions) {
		o.historyListener = fn
	}
}
