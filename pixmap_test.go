package whiteboard

import (
	"bytes"
	"testing"
)

func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(5, 5, Red)

	got := pm.GetPixel(5, 5)
	if got != Red {
		t.Errorf("GetPixel(5, 5) = %+v, want %+v", got, Red)
	}
	if got := pm.GetPixel(4, 5); got != Transparent {
		t.Errorf("untouched pixel = %+v, want transparent", got)
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	original := append([]uint8(nil), pm.Data()...)

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, Red)
		pm.BlendPixel(c.x, c.y, Red, 1)
		pm.ErasePixel(c.x, c.y, 1)
		if got := pm.GetPixel(c.x, c.y); got != Transparent {
			t.Errorf("GetPixel(%d, %d) = %+v, want transparent", c.x, c.y, got)
		}
	}
	if !bytes.Equal(pm.Data(), original) {
		t.Error("out-of-bounds writes modified data")
	}
}

func TestPixmap_BlendPixel(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.Clear(White)

	// Full-coverage opaque blend replaces the pixel exactly.
	pm.BlendPixel(0, 0, Red, 1)
	if got := pm.GetPixel(0, 0); got != Red {
		t.Errorf("opaque blend = %+v, want %+v", got, Red)
	}

	// Half coverage over white lightens toward the source.
	pm.BlendPixel(1, 0, Black, 0.5)
	got := pm.GetPixel(1, 0)
	if got.A != 1 {
		t.Errorf("blend over opaque produced alpha %v, want 1", got.A)
	}
	if got.R < 0.45 || got.R > 0.55 {
		t.Errorf("half-coverage black over white: R = %v, want ~0.5", got.R)
	}
}

func TestPixmap_ErasePixel(t *testing.T) {
	pm := NewPixmap(2, 1)
	pm.SetPixel(0, 0, Red)
	pm.SetPixel(1, 0, Red)

	pm.ErasePixel(0, 0, 1)
	if got := pm.GetPixel(0, 0); got.A != 0 {
		t.Errorf("full erase left alpha %v, want 0", got.A)
	}

	pm.ErasePixel(1, 0, 0.5)
	got := pm.GetPixel(1, 0)
	if got.A < 0.45 || got.A > 0.55 {
		t.Errorf("half erase left alpha %v, want ~0.5", got.A)
	}
}

func TestPixmap_DrawOver_FlattensTransparency(t *testing.T) {
	src := NewPixmap(3, 1)
	src.SetPixel(0, 0, Red) // opaque
	// pixel 1 stays transparent
	src.SetPixel(2, 0, RGBA2(0, 0, 1, 0.5))

	dst := NewPixmap(3, 1)
	dst.Clear(White)
	dst.DrawOver(src)

	if got := dst.GetPixel(0, 0); got != Red {
		t.Errorf("opaque pixel = %+v, want red", got)
	}
	if got := dst.GetPixel(1, 0); got != White {
		t.Errorf("transparent pixel = %+v, want white background", got)
	}
	got := dst.GetPixel(2, 0)
	if got.A != 1 {
		t.Errorf("semi-transparent blend alpha = %v, want 1", got.A)
	}
	// Half-alpha blue over white: blue stays saturated, red and green drop
	// halfway toward zero.
	if got.B < 0.99 {
		t.Errorf("semi-transparent blend B = %v, want ~1", got.B)
	}
	if got.R < 0.45 || got.R > 0.55 {
		t.Errorf("semi-transparent blend R = %v, want ~0.5", got.R)
	}
}

func TestPixmap_DrawOver_MismatchedIgnored(t *testing.T) {
	dst := NewPixmap(4, 4)
	dst.Clear(White)
	original := append([]uint8(nil), dst.Data()...)

	dst.DrawOver(NewPixmap(2, 2))
	if !bytes.Equal(dst.Data(), original) {
		t.Error("mismatched DrawOver modified destination")
	}
}

func TestPixmap_DrawStretched_EqualDimsCopies(t *testing.T) {
	src := NewPixmap(4, 4)
	src.SetPixel(1, 2, Green)

	dst := NewPixmap(4, 4)
	dst.DrawStretched(src)
	if !bytes.Equal(dst.Data(), src.Data()) {
		t.Error("equal-dimension stretch is not a verbatim copy")
	}
}

func TestPixmap_DrawStretched_ScalesContent(t *testing.T) {
	src := NewPixmap(10, 10)
	for y := 4; y < 6; y++ {
		for x := 4; x < 6; x++ {
			src.SetPixel(x, y, Red)
		}
	}

	dst := NewPixmap(20, 20)
	dst.DrawStretched(src)

	// The 2x2 block at the source center lands at the destination center.
	if got := dst.GetPixel(9, 9); got.A < 0.5 {
		t.Errorf("center pixel alpha = %v, want opaque content", got.A)
	}
	if got := dst.GetPixel(1, 1); got.A > 0.1 {
		t.Errorf("corner pixel alpha = %v, want ~transparent", got.A)
	}
}

func TestPixmap_PNGRoundTrip(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(White)
	pm.SetPixel(3, 4, Red)
	pm.SetPixel(7, 0, Blue)

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	got, err := DecodePNG(&buf)
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}
	if got.Width() != 8 || got.Height() != 8 {
		t.Fatalf("decoded dimensions = %dx%d, want 8x8", got.Width(), got.Height())
	}
	if !bytes.Equal(got.Data(), pm.Data()) {
		t.Error("opaque PNG round trip is not byte-identical")
	}
}

func TestPixmap_Clone_Independent(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(0, 0, Red)

	c := pm.Clone()
	c.SetPixel(0, 0, Blue)
	if got := pm.GetPixel(0, 0); got != Red {
		t.Errorf("mutating clone changed original: %+v", got)
	}
}
