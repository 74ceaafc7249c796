package whiteboard

import "math"

// Page aspect ratio, portrait A5 proportions.
const (
	pageAspectWidth  = 148.0
	pageAspectHeight = 210.0
)

// DefaultMargin is the logical-unit margin subtracted from the container
// before fitting a page. Override with WithMargin.
const DefaultMargin = 16.0

// Viewport is the container measurement provider: it reports the space
// available for a page and the display's pixel density. The host UI
// implements this against its layout system.
type Viewport interface {
	// ContainerSize returns the available container width and height in
	// logical units.
	ContainerSize() (w, h float64)

	// DevicePixelRatio returns the ratio of device pixels to logical
	// units.
	DevicePixelRatio() float64
}

// FixedViewport is a Viewport with constant measurements, for headless use
// and tests.
type FixedViewport struct {
	W, H float64
	DPR  float64
}

// ContainerSize implements Viewport.
func (v *FixedViewport) ContainerSize() (w, h float64) { return v.W, v.H }

// DevicePixelRatio implements Viewport.
func (v *FixedViewport) DevicePixelRatio() float64 {
	if v.DPR <= 0 {
		return 1
	}
	return v.DPR
}

// surfaceManager keeps a page's pixel buffer aligned with its on-screen
// footprint and the display's pixel density, without discarding drawn
// content when possible.
type surfaceManager struct {
	viewport Viewport
	margin   float64
}

// Layout computes the largest fixed-aspect rectangle fitting the container
// minus the margin, capped from both width and height, floors it to whole
// logical units as the page's display size, then syncs the buffer.
// Reports whether the buffer changed.
func (m *surfaceManager) Layout(pg *Page, paint Paint, preserve bool) bool {
	cw, ch := m.viewport.ContainerSize()
	availW := cw - m.margin
	availH := ch - m.margin

	w := availW
	h := w * pageAspectHeight / pageAspectWidth
	if h > availH {
		h = availH
		w = h * pageAspectWidth / pageAspectHeight
	}

	pg.displayW = int(math.Floor(w))
	pg.displayH = int(math.Floor(h))
	if pg.displayW < 1 {
		pg.displayW = 1
	}
	if pg.displayH < 1 {
		pg.displayH = 1
	}

	return m.syncBuffer(pg, paint, preserve)
}

// syncBuffer reallocates the page's buffer when the required device-pixel
// dimensions or the density changed. The common case, nothing changed, is
// a no-op with no reallocation and no redraw. On a real change the current
// raster is captured before the resize when preserving (resizing discards
// buffer content), the coordinate transform is reset to the new ratio, the
// shared paint is reapplied, the capture is redrawn stretched to fill the
// new dimensions exactly, and the page's history is rebaselined since
// stacked snapshots no longer match the buffer geometry.
// Reports whether the buffer changed.
func (m *surfaceManager) syncBuffer(pg *Page, paint Paint, preserve bool) bool {
	ratio := m.viewport.DevicePixelRatio()
	reqW := int(math.Round(float64(pg.displayW) * ratio))
	reqH := int(math.Round(float64(pg.displayH) * ratio))
	if reqW < 1 {
		reqW = 1
	}
	if reqH < 1 {
		reqH = 1
	}

	if pg.canvas != nil && pg.canvas.Width() == reqW && pg.canvas.Height() == reqH && pg.ratio == ratio {
		pg.canvas.ApplyPaint(paint)
		return false
	}

	var capture *Pixmap
	if preserve && pg.canvas != nil {
		capture = pg.canvas.Snapshot()
	}

	if pg.canvas == nil {
		pg.canvas = NewCanvas(reqW, reqH, ratio)
	} else {
		pg.canvas.Resize(reqW, reqH)
		pg.canvas.SetScale(ratio)
	}
	pg.ratio = ratio
	pg.canvas.ApplyPaint(paint)

	if capture != nil {
		pg.canvas.pixmap.DrawStretched(capture)
	}
	pg.hist.Rebaseline(pg.canvas)

	Logger().Debug("buffer synced",
		"page", pg.id,
		"display_w", pg.displayW, "display_h", pg.displayH,
		"px_w", reqW, "px_h", reqH,
		"ratio", ratio,
		"preserved", capture != nil)
	return true
}
