package whiteboard

// gesture tracks one in-flight pointer drag. The page is captured for the
// gesture's duration, so a page switch mid-drag keeps routing input to the
// page the stroke started on.
type gesture struct {
	page   *Page
	active bool
}

// PointerDown begins a stroke gesture at the given logical position on the
// active page. The page's history is snapshotted before any pixel changes;
// one snapshot per stroke, taken here. Ignored when the board has no
// pages.
func (b *Board) PointerDown(x, y float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active < 0 {
		return
	}
	pg := b.pages[b.active]
	b.gest = gesture{page: pg, active: true}
	pg.hist.Push(pg.canvas, false)
	b.notifyLocked()
	pg.canvas.ApplyPaint(b.paint)
	pg.canvas.MoveTo(x, y)
}

// PointerMove extends the in-flight stroke to the given logical position
// and renders the segment immediately. Stray moves with no active gesture
// are ignored. Positions outside the page clip harmlessly at the buffer
// bounds, so a drag off the surface still extends the stroke.
func (b *Board) PointerMove(x, y float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.gest.active {
		return
	}
	b.gest.page.canvas.LineTo(x, y)
}

// PointerUp completes the in-flight stroke at the given logical position
// and releases the gesture capture. Covers release, cancellation, and
// leaving the surface mid-drag. No second history snapshot is taken.
// Ignored when no gesture is active.
func (b *Board) PointerUp(x, y float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.gest.active {
		return
	}
	c := b.gest.page.canvas
	c.LineTo(x, y)
	c.EndStroke()
	b.gest = gesture{}
}
