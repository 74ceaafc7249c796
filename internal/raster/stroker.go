// Package raster provides anti-aliased stroke rasterization for wide
// polylines with round caps and joins.
package raster

import "math"

// Point is a 2D point in device pixels (internal copy to avoid import
// cycle).
type Point struct {
	X, Y float64
}

// RGBA represents a color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A float64
}

// Surface is an interface for writing stroked pixels (avoids import cycle).
// Coverage is in [0, 1].
type Surface interface {
	Width() int
	Height() int
	BlendPixel(x, y int, c RGBA, cov float64)
	ErasePixel(x, y int, cov float64)
}

// Stroker renders wide polyline segments as capsules: a rectangle the
// length of the segment plus round caps at both ends. Coverage is computed
// analytically from the distance of each pixel center to the segment and
// accumulated into a buffer with max-combine, so overlapping geometry
// within one call emits each pixel exactly once.
type Stroker struct {
	width  int
	height int
	cov    []float32

	// dirty rect of touched coverage, maxX/maxY exclusive
	minX, minY, maxX, maxY int
}

// NewStroker creates a stroker for a buffer of the given device-pixel
// dimensions.
func NewStroker(width, height int) *Stroker {
	s := &Stroker{
		width:  width,
		height: height,
		cov:    make([]float32, width*height),
	}
	s.resetDirty()
	return s
}

// Resize keeps the stroker in step with a buffer reallocation. No-op on
// equal dimensions.
func (s *Stroker) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.cov = make([]float32, width*height)
	s.resetDirty()
}

// StrokeSegment renders the capsule from a to b with the given brush
// diameter onto dst, painting with c, or clearing when erase is set.
// A zero-length segment renders a round dot of brush diameter.
func (s *Stroker) StrokeSegment(dst Surface, a, b Point, width float64, c RGBA, erase bool) {
	r := width / 2
	if r <= 0 {
		return
	}
	s.accumulateCapsule(a, b, r)
	s.flush(dst, c, erase)
}

// StrokeDot renders a round dot of brush diameter centered at p.
func (s *Stroker) StrokeDot(dst Surface, p Point, width float64, c RGBA, erase bool) {
	s.StrokeSegment(dst, p, p, width, c, erase)
}

func (s *Stroker) resetDirty() {
	s.minX, s.minY = s.width, s.height
	s.maxX, s.maxY = 0, 0
}

// accumulateCapsule max-combines the capsule's per-pixel coverage into the
// buffer. Coverage falls off linearly across one pixel at the boundary,
// which approximates exact area coverage closely enough for stroke edges.
func (s *Stroker) accumulateCapsule(a, b Point, r float64) {
	x0 := int(math.Floor(math.Min(a.X, b.X) - r - 1))
	x1 := int(math.Ceil(math.Max(a.X, b.X) + r + 1))
	y0 := int(math.Floor(math.Min(a.Y, b.Y) - r - 1))
	y1 := int(math.Ceil(math.Max(a.Y, b.Y) + r + 1))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > s.width {
		x1 = s.width
	}
	if y1 > s.height {
		y1 = s.height
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy

	for y := y0; y < y1; y++ {
		py := float64(y) + 0.5
		row := y * s.width
		for x := x0; x < x1; x++ {
			px := float64(x) + 0.5

			// Distance from pixel center to the segment.
			var d float64
			if lenSq <= 1e-12 {
				d = math.Hypot(px-a.X, py-a.Y)
			} else {
				t := ((px-a.X)*dx + (py-a.Y)*dy) / lenSq
				if t < 0 {
					t = 0
				} else if t > 1 {
					t = 1
				}
				d = math.Hypot(px-(a.X+t*dx), py-(a.Y+t*dy))
			}

			cov := r + 0.5 - d
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			if f := float32(cov); f > s.cov[row+x] {
				s.cov[row+x] = f
			}
		}
	}

	if x0 < s.minX {
		s.minX = x0
	}
	if y0 < s.minY {
		s.minY = y0
	}
	if x1 > s.maxX {
		s.maxX = x1
	}
	if y1 > s.maxY {
		s.maxY = y1
	}
}

// flush composites the accumulated coverage onto dst and clears the dirty
// region for the next call.
func (s *Stroker) flush(dst Surface, c RGBA, erase bool) {
	for y := s.minY; y < s.maxY; y++ {
		row := y * s.width
		for x := s.minX; x < s.maxX; x++ {
			cov := float64(s.cov[row+x])
			if cov <= 0 {
				continue
			}
			if erase {
				dst.ErasePixel(x, y, cov)
			} else {
				dst.BlendPixel(x, y, c, cov)
			}
			s.cov[row+x] = 0
		}
	}
	s.resetDirty()
}
