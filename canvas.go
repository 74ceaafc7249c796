package whiteboard

import (
	"github.com/WOWitsaQT/whiteboard/internal/raster"
)

// Canvas is a device-pixel drawing buffer addressed in logical units.
// It pairs a Pixmap with a device-pixel-ratio scale factor, the active
// Paint, and the in-progress stroke path. All drawing commands take
// logical coordinates; the canvas multiplies positions and brush width by
// its scale when rasterizing, so the scale factor is the sole coordinate
// transform.
//
// Canvas is not safe for concurrent use; Board is the concurrency
// boundary.
type Canvas struct {
	pixmap  *Pixmap
	stroker *raster.Stroker
	scale   float64
	paint   Paint

	// in-progress stroke, device units
	curX, curY float64
	open       bool
	moved      bool
}

// NewCanvas creates a canvas with a buffer of the given device-pixel
// dimensions and device-pixel-ratio scale.
func NewCanvas(widthPx, heightPx int, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	return &Canvas{
		pixmap:  NewPixmap(widthPx, heightPx),
		stroker: raster.NewStroker(widthPx, heightPx),
		scale:   scale,
		paint:   NewPaint(),
	}
}

// Width returns the buffer width in device pixels.
func (c *Canvas) Width() int { return c.pixmap.width }

// Height returns the buffer height in device pixels.
func (c *Canvas) Height() int { return c.pixmap.height }

// Scale returns the device-pixel-ratio scale factor.
func (c *Canvas) Scale() float64 { return c.scale }

// Pixmap returns the underlying pixel buffer.
func (c *Canvas) Pixmap() *Pixmap { return c.pixmap }

// ApplyPaint sets the paint used by subsequent stroke commands.
func (c *Canvas) ApplyPaint(p Paint) { c.paint = p }

// Paint returns the paint currently applied to the canvas.
func (c *Canvas) Paint() Paint { return c.paint }

// SetScale updates the device-pixel-ratio scale factor.
func (c *Canvas) SetScale(scale float64) {
	if scale > 0 {
		c.scale = scale
	}
}

// Resize reallocates the buffer to the given device-pixel dimensions,
// discarding its content; callers that need the content must capture it
// first. No-op on equal dimensions. Any in-progress stroke is abandoned.
func (c *Canvas) Resize(widthPx, heightPx int) {
	if widthPx == c.pixmap.width && heightPx == c.pixmap.height {
		return
	}
	c.pixmap = NewPixmap(widthPx, heightPx)
	c.stroker.Resize(widthPx, heightPx)
	c.open = false
}

// Clear resets the buffer to fully transparent.
func (c *Canvas) Clear() {
	c.pixmap.Clear(Transparent)
}

// MoveTo begins a new stroke path at the given logical position.
func (c *Canvas) MoveTo(x, y float64) {
	c.curX, c.curY = x*c.scale, y*c.scale
	c.open = true
	c.moved = false
}

// LineTo extends the open stroke to the given logical position and renders
// the segment immediately with the current paint. Ignored when no stroke
// is open.
func (c *Canvas) LineTo(x, y float64) {
	if !c.open {
		return
	}
	nx, ny := x*c.scale, y*c.scale
	c.stroker.StrokeSegment(
		pixmapSurface{c.pixmap},
		raster.Point{X: c.curX, Y: c.curY},
		raster.Point{X: nx, Y: ny},
		c.paint.Width*c.scale,
		rasterColor(c.paint.Color),
		c.paint.Tool == ToolErase,
	)
	c.curX, c.curY = nx, ny
	c.moved = true
}

// EndStroke closes the open stroke. A stroke that never moved renders a
// round dot of brush diameter at its start. Ignored when no stroke is
// open.
func (c *Canvas) EndStroke() {
	if !c.open {
		return
	}
	if !c.moved {
		c.stroker.StrokeDot(
			pixmapSurface{c.pixmap},
			raster.Point{X: c.curX, Y: c.curY},
			c.paint.Width*c.scale,
			rasterColor(c.paint.Color),
			c.paint.Tool == ToolErase,
		)
	}
	c.open = false
}

// Snapshot returns a deep copy of the current raster.
func (c *Canvas) Snapshot() *Pixmap {
	return c.pixmap.Clone()
}

// restore replaces the buffer's content with a snapshot. Equal dimensions
// copy verbatim; a mismatch falls back to a stretched redraw so a stale
// snapshot can never corrupt buffer geometry.
func (c *Canvas) restore(snap *Pixmap) {
	if snap.width == c.pixmap.width && snap.height == c.pixmap.height {
		c.pixmap.CopyFrom(snap)
		return
	}
	Logger().Warn("snapshot dimension mismatch, restoring stretched",
		"have", [2]int{snap.width, snap.height},
		"want", [2]int{c.pixmap.width, c.pixmap.height})
	c.pixmap.DrawStretched(snap)
}

// pixmapSurface adapts Pixmap to the raster.Surface sink interface.
type pixmapSurface struct {
	pm *Pixmap
}

func (s pixmapSurface) Width() int  { return s.pm.width }
func (s pixmapSurface) Height() int { return s.pm.height }

func (s pixmapSurface) BlendPixel(x, y int, c raster.RGBA, cov float64) {
	s.pm.BlendPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, cov)
}

func (s pixmapSurface) ErasePixel(x, y int, cov float64) {
	s.pm.ErasePixel(x, y, cov)
}

func rasterColor(c RGBA) raster.RGBA {
	return raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
