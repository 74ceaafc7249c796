package whiteboard

import "errors"

var (
	// ErrInvalidName is returned by Save and Load when the session name is
	// empty.
	ErrInvalidName = errors.New("whiteboard: invalid session name")

	// ErrUnsupportedColor is returned when a color specification cannot be
	// parsed. The previous color is left unchanged.
	ErrUnsupportedColor = errors.New("whiteboard: unsupported color")

	// ErrNoStore is returned by Save and Load when the board was built
	// without a persistence store.
	ErrNoStore = errors.New("whiteboard: no store configured")

	// ErrNoActivePage is returned by ExportActivePage when the board has no
	// pages.
	ErrNoActivePage = errors.New("whiteboard: no active page")
)
