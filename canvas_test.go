package whiteboard

import (
	"bytes"
	"testing"
)

func TestCanvas_StrokeRendersSegment(t *testing.T) {
	c := NewCanvas(100, 100, 1)
	p := NewPaint()
	p.Color = Red
	p.Width = 8
	c.ApplyPaint(p)

	c.MoveTo(10, 50)
	c.LineTo(90, 50)
	c.EndStroke()

	// On the segment's spine coverage is full.
	if got := c.Pixmap().GetPixel(50, 50); got.A < 0.99 {
		t.Errorf("pixel on stroke spine alpha = %v, want ~1", got.A)
	}
	if got := c.Pixmap().GetPixel(50, 50); got.R < 0.99 {
		t.Errorf("pixel on stroke spine R = %v, want ~1", got.R)
	}
	// Well outside the brush radius nothing is painted.
	if got := c.Pixmap().GetPixel(50, 70); got.A != 0 {
		t.Errorf("pixel off stroke alpha = %v, want 0", got.A)
	}
}

func TestCanvas_ScaleMapsLogicalToDevice(t *testing.T) {
	c := NewCanvas(200, 200, 2)
	p := NewPaint()
	p.Color = Blue
	p.Width = 4
	c.ApplyPaint(p)

	c.MoveTo(10, 50)
	c.LineTo(90, 50)
	c.EndStroke()

	// Logical y=50 is device y=100; the brush is 8 device pixels wide.
	if got := c.Pixmap().GetPixel(100, 100); got.A < 0.99 {
		t.Errorf("device pixel (100, 100) alpha = %v, want ~1", got.A)
	}
	if got := c.Pixmap().GetPixel(100, 50); got.A != 0 {
		t.Errorf("logical-coordinate pixel (100, 50) alpha = %v, want 0", got.A)
	}
}

func TestCanvas_DotOnZeroLengthStroke(t *testing.T) {
	c := NewCanvas(40, 40, 1)
	p := NewPaint()
	p.Color = Black
	p.Width = 6
	c.ApplyPaint(p)

	c.MoveTo(20, 20)
	c.EndStroke()

	if got := c.Pixmap().GetPixel(20, 20); got.A < 0.99 {
		t.Errorf("dot center alpha = %v, want ~1", got.A)
	}
	if got := c.Pixmap().GetPixel(20, 28); got.A != 0 {
		t.Errorf("outside dot radius alpha = %v, want 0", got.A)
	}
}

func TestCanvas_EraseClearsPixels(t *testing.T) {
	c := NewCanvas(60, 60, 1)
	p := NewPaint()
	p.Color = Red
	p.Width = 10
	c.ApplyPaint(p)

	c.MoveTo(10, 30)
	c.LineTo(50, 30)
	c.EndStroke()
	if got := c.Pixmap().GetPixel(30, 30); got.A < 0.99 {
		t.Fatalf("setup stroke alpha = %v, want ~1", got.A)
	}

	p.Tool = ToolErase
	c.ApplyPaint(p)
	c.MoveTo(10, 30)
	c.LineTo(50, 30)
	c.EndStroke()

	if got := c.Pixmap().GetPixel(30, 30); got.A != 0 {
		t.Errorf("erased pixel alpha = %v, want 0", got.A)
	}
}

func TestCanvas_LineToWithoutMoveToIgnored(t *testing.T) {
	c := NewCanvas(40, 40, 1)
	before := append([]uint8(nil), c.Pixmap().Data()...)

	c.LineTo(20, 20)
	c.EndStroke()

	if !bytes.Equal(c.Pixmap().Data(), before) {
		t.Error("LineTo without an open stroke modified the raster")
	}
}

func TestCanvas_ResizeEqualDimsNoop(t *testing.T) {
	c := NewCanvas(50, 50, 1)
	pm := c.Pixmap()
	c.Resize(50, 50)
	if c.Pixmap() != pm {
		t.Error("equal-dimension resize reallocated the buffer")
	}
}

func TestCanvas_ResizeDiscardsContent(t *testing.T) {
	c := NewCanvas(50, 50, 1)
	c.Pixmap().SetPixel(10, 10, Red)

	c.Resize(80, 80)
	if c.Width() != 80 || c.Height() != 80 {
		t.Fatalf("buffer = %dx%d, want 80x80", c.Width(), c.Height())
	}
	if got := c.Pixmap().GetPixel(10, 10); got.A != 0 {
		t.Errorf("resized buffer retained content: alpha = %v", got.A)
	}
}

func TestCanvas_StrokeClipsAtBounds(t *testing.T) {
	c := NewCanvas(30, 30, 1)
	p := NewPaint()
	p.Color = Red
	p.Width = 4
	c.ApplyPaint(p)

	// Drag well off the buffer; must not panic and must paint the
	// in-bounds portion.
	c.MoveTo(15, 15)
	c.LineTo(200, 15)
	c.EndStroke()

	if got := c.Pixmap().GetPixel(28, 15); got.A < 0.99 {
		t.Errorf("in-bounds portion alpha = %v, want ~1", got.A)
	}
}
