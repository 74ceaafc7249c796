package whiteboard

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/WOWitsaQT/whiteboard/store"
)

// Board is an ordered collection of pages sharing one drawing context,
// plus the facade UI glue calls into: tool/brush/color setters, pointer
// input, undo/redo, session save/load, and export.
//
// Exactly one page is active whenever the collection is non-empty. All
// public methods are safe for concurrent use; the board serializes
// drawing, layout, and history behind one lock, and Save/Load against
// each other behind a second so a durable write never blocks drawing.
type Board struct {
	mu      sync.Mutex
	pages   []*Page
	active  int
	paint   Paint
	surf    surfaceManager
	gest    gesture
	session string

	st        store.Store
	persistMu sync.Mutex

	onHistory func(canUndo, canRedo bool)
}

// NewBoard creates an empty board measured against the given viewport.
func NewBoard(v Viewport, opts ...Option) *Board {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Board{
		active:    -1,
		paint:     NewPaint(),
		surf:      surfaceManager{viewport: v, margin: o.margin},
		st:        o.store,
		onHistory: o.historyListener,
	}
}

// CreatePage appends a fresh page, lays it out, baselines its history, and
// makes it the active page. Returns the new page's index.
func (b *Board) CreatePage() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.createPageLocked()
}

func (b *Board) createPageLocked() int {
	pg := newPage()
	b.pages = append(b.pages, pg)
	b.active = len(b.pages) - 1
	b.surf.Layout(pg, b.paint, false)
	b.notifyLocked()
	Logger().Debug("page created", "id", pg.id, "index", b.active)
	return b.active
}

// SelectPage makes the page at index the active page, reapplies the shared
// drawing context to its canvas, and lays it out preserving content.
// Out-of-range indices are silently ignored.
func (b *Board) SelectPage(index int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if index < 0 || index >= len(b.pages) {
		return
	}
	b.active = index
	pg := b.pages[index]
	b.surf.Layout(pg, b.paint, true)
	b.notifyLocked()
}

// RemovePage removes the page at index; the nearest remaining page becomes
// active. Out-of-range indices are silently ignored. The collection may
// become empty.
func (b *Board) RemovePage(index int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if index < 0 || index >= len(b.pages) {
		return
	}
	if b.gest.active && b.gest.page == b.pages[index] {
		b.gest = gesture{}
	}
	b.pages = append(b.pages[:index], b.pages[index+1:]...)
	if len(b.pages) == 0 {
		b.active = -1
		b.notifyLocked()
		return
	}
	if index > len(b.pages)-1 {
		index = len(b.pages) - 1
	}
	b.active = index
	b.surf.Layout(b.pages[index], b.paint, true)
	b.notifyLocked()
}

// Undo reverts the active page's most recent stroke. No-op with no pages
// or an empty undo stack.
func (b *Board) Undo() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active < 0 {
		return
	}
	pg := b.pages[b.active]
	pg.hist.Undo(pg.canvas)
	b.notifyLocked()
}

// Redo re-applies the active page's most recently undone stroke. No-op
// with no pages or an empty redo stack.
func (b *Board) Redo() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active < 0 {
		return
	}
	pg := b.pages[b.active]
	pg.hist.Redo(pg.canvas)
	b.notifyLocked()
}

// SetTool switches between mark and erase for all pages.
func (b *Board) SetTool(t Tool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.paint.Tool = t
	b.reapplyLocked()
}

// SetBrushSize sets the brush diameter in logical units, clamped to
// [MinBrushSize, MaxBrushSize].
func (b *Board) SetBrushSize(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.paint.Width = float64(clampBrushSize(n))
	b.reapplyLocked()
}

// SetColor sets the stroke color from a hex specification. A malformed
// specification fails with an error wrapping ErrUnsupportedColor and
// leaves the previous color unchanged.
func (b *Board) SetColor(spec string) error {
	c, err := ParseHex(spec)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.paint.Color = c
	b.reapplyLocked()
	return nil
}

// Relayout re-runs the layout pass for the active page, preserving
// content. The host calls this when the container resizes or the device
// pixel ratio changes.
func (b *Board) Relayout() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active < 0 {
		return
	}
	b.surf.Layout(b.pages[b.active], b.paint, true)
	b.notifyLocked()
}

// PageCount returns the number of pages.
func (b *Board) PageCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pages)
}

// ActiveIndex returns the active page's index, or -1 when the board is
// empty.
func (b *Board) ActiveIndex() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}

// ActivePage returns the active page, or nil when the board is empty.
func (b *Board) ActivePage() *Page {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active < 0 {
		return nil
	}
	return b.pages[b.active]
}

// CanUndo reports whether the active page has undo history.
func (b *Board) CanUndo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active >= 0 && b.pages[b.active].hist.CanUndo()
}

// CanRedo reports whether the active page has redo history.
func (b *Board) CanRedo() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active >= 0 && b.pages[b.active].hist.CanRedo()
}

// SessionName returns the name of the most recently saved or loaded
// session, or "" for an unnamed board.
func (b *Board) SessionName() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session
}

// Tool returns the active tool.
func (b *Board) Tool() Tool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.paint.Tool
}

// BrushSize returns the brush diameter in logical units.
func (b *Board) BrushSize() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return int(b.paint.Width)
}

// Color returns the active stroke color.
func (b *Board) Color() RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.paint.Color
}

// Save flattens every page to an opaque white-backed PNG and durably
// writes the session record under name, overwriting any prior record with
// that name. An empty name fails with ErrInvalidName; a board built
// without a store fails with ErrNoStore. Concurrent Save/Load calls are
// serialized; drawing is not blocked while the write commits.
func (b *Board) Save(ctx context.Context, name string) error {
	if name == "" {
		return ErrInvalidName
	}

	b.mu.Lock()
	if b.st == nil {
		b.mu.Unlock()
		return ErrNoStore
	}
	blobs := make([][]byte, len(b.pages))
	for i, pg := range b.pages {
		var buf bytes.Buffer
		if err := flattenPage(pg).EncodePNG(&buf); err != nil {
			b.mu.Unlock()
			return fmt.Errorf("flatten page %d: %w", i+1, err)
		}
		blobs[i] = buf.Bytes()
	}
	b.mu.Unlock()

	b.persistMu.Lock()
	defer b.persistMu.Unlock()

	rec := &store.Session{Name: name, SavedAt: time.Now(), Pages: blobs}
	if err := b.st.Put(ctx, rec); err != nil {
		return fmt.Errorf("save session %q: %w", name, err)
	}

	b.mu.Lock()
	b.session = name
	b.mu.Unlock()
	Logger().Info("session saved", "session", name, "pages", len(blobs))
	return nil
}

// Load replaces the board's pages with the session stored under name: all
// existing pages are wiped, one new page is created per stored image, each
// image is decoded into its page's buffer (stretched when the stored
// dimensions differ from the current layout), every history is rebaselined
// since loaded content has no prior drawing operations to undo into, and
// the first page becomes active.
//
// An empty name fails with ErrInvalidName; an unknown name fails with an
// error matching store.ErrNotFound, which callers treat as "not found"
// rather than a fault. A record with zero images yields one fresh blank
// page. A decode failure aborts the load with the pages decoded so far
// still usable.
func (b *Board) Load(ctx context.Context, name string) error {
	if name == "" {
		return ErrInvalidName
	}

	b.mu.Lock()
	st := b.st
	b.mu.Unlock()
	if st == nil {
		return ErrNoStore
	}

	b.persistMu.Lock()
	defer b.persistMu.Unlock()

	rec, err := st.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("load session %q: %w", name, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.gest = gesture{}
	b.pages = nil
	b.active = -1
	b.session = name

	if len(rec.Pages) == 0 {
		b.createPageLocked()
		return nil
	}

	for i, blob := range rec.Pages {
		b.createPageLocked()
		pg := b.pages[b.active]
		pm, err := DecodePNG(bytes.NewReader(blob))
		if err != nil {
			return fmt.Errorf("load session %q: decode page %d: %w", name, i+1, err)
		}
		pg.canvas.restore(pm)
		pg.hist.Rebaseline(pg.canvas)
	}

	b.active = 0
	b.surf.Layout(b.pages[0], b.paint, true)
	b.notifyLocked()
	Logger().Info("session loaded", "session", name, "pages", len(b.pages))
	return nil
}

// reapplyLocked pushes the shared drawing context onto the active page's
// canvas.
func (b *Board) reapplyLocked() {
	if b.active >= 0 && b.pages[b.active].canvas != nil {
		b.pages[b.active].canvas.ApplyPaint(b.paint)
	}
}

// notifyLocked recomputes undo/redo enablement for the active page and
// informs the history listener.
func (b *Board) notifyLocked() {
	if b.onHistory == nil {
		return
	}
	var canUndo, canRedo bool
	if b.active >= 0 {
		h := &b.pages[b.active].hist
		canUndo, canRedo = h.CanUndo(), h.CanRedo()
	}
	b.onHistory(canUndo, canRedo)
}
