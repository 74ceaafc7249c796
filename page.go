package whiteboard

import "github.com/google/uuid"

// Page is one drawing surface in a board: an opaque identity, a canvas
// allocated by the first layout pass, the display size the canvas was laid
// out for, the device-pixel ratio it was allocated at, and its history.
// A page exclusively owns its canvas and history stacks; there is no
// sharing across pages.
type Page struct {
	id       string
	canvas   *Canvas
	displayW int // logical units, floored by layout
	displayH int
	ratio    float64
	hist     history
}

func newPage() *Page {
	return &Page{id: uuid.NewString()}
}

// ID returns the page's opaque unique identity.
func (p *Page) ID() string { return p.id }

// Canvas returns the page's drawing canvas. Nil until the first layout
// pass has run.
func (p *Page) Canvas() *Canvas { return p.canvas }

// DisplaySize returns the page's display size in logical units.
func (p *Page) DisplaySize() (w, h int) { return p.displayW, p.displayH }

// Ratio returns the device-pixel ratio the buffer was allocated at.
func (p *Page) Ratio() float64 { return p.ratio }
