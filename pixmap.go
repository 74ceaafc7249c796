package whiteboard

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are straight-alpha RGBA, 4 bytes per pixel, row-major.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R*255 + 0.5))
	p.data[i+1] = uint8(clamp255(c.G*255 + 0.5))
	p.data[i+2] = uint8(clamp255(c.B*255 + 0.5))
	p.data[i+3] = uint8(clamp255(c.A*255 + 0.5))
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R*255 + 0.5))
	g := uint8(clamp255(c.G*255 + 0.5))
	b := uint8(clamp255(c.B*255 + 0.5))
	a := uint8(clamp255(c.A*255 + 0.5))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// CopyFrom replaces the pixmap's content with src's. The dimensions must
// match; mismatched sources are ignored.
func (p *Pixmap) CopyFrom(src *Pixmap) {
	if src.width != p.width || src.height != p.height {
		return
	}
	copy(p.data, src.data)
}

// BlendPixel composites c over the pixel at (x, y) with the given coverage
// in [0, 1]. Source-over on straight alpha.
func (p *Pixmap) BlendPixel(x, y int, c RGBA, cov float64) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	sa := c.A * cov
	if sa <= 0 {
		return
	}
	if sa > 1 {
		sa = 1
	}

	i := (y*p.width + x) * 4
	da := float64(p.data[i+3]) / 255
	outA := sa + da*(1-sa)
	if outA <= 0 {
		p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = 0, 0, 0, 0
		return
	}

	dr := float64(p.data[i+0]) / 255
	dg := float64(p.data[i+1]) / 255
	db := float64(p.data[i+2]) / 255
	w := da * (1 - sa)
	// Round rather than truncate so full-opacity blends are byte-exact.
	p.data[i+0] = uint8(clamp255((c.R*sa+dr*w)/outA*255 + 0.5))
	p.data[i+1] = uint8(clamp255((c.G*sa+dg*w)/outA*255 + 0.5))
	p.data[i+2] = uint8(clamp255((c.B*sa+db*w)/outA*255 + 0.5))
	p.data[i+3] = uint8(clamp255(outA*255 + 0.5))
}

// ErasePixel scales down the alpha of the pixel at (x, y) by the given
// coverage in [0, 1] (destination-out). Full coverage clears the pixel.
func (p *Pixmap) ErasePixel(x, y int, cov float64) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	if cov <= 0 {
		return
	}
	if cov > 1 {
		cov = 1
	}
	i := (y*p.width + x) * 4
	a := float64(p.data[i+3]) * (1 - cov)
	p.data[i+3] = uint8(clamp255(a))
	if p.data[i+3] == 0 {
		p.data[i+0], p.data[i+1], p.data[i+2] = 0, 0, 0
	}
}

// DrawOver composites src over the pixmap at full opacity. The dimensions
// must match; mismatched sources are ignored. Used for flattening a page
// onto a background.
func (p *Pixmap) DrawOver(src *Pixmap) {
	if src.width != p.width || src.height != p.height {
		return
	}
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			i := (y*p.width + x) * 4
			switch src.data[i+3] {
			case 0:
				// fully transparent, destination wins
			case 0xff:
				copy(p.data[i:i+4], src.data[i:i+4])
			default:
				p.BlendPixel(x, y, src.GetPixel(x, y), 1)
			}
		}
	}
}

// DrawStretched replaces the pixmap's content with src scaled to fill the
// destination dimensions exactly (stretch, not letterbox), using bilinear
// interpolation. Equal dimensions fast-path to a plain copy.
func (p *Pixmap) DrawStretched(src *Pixmap) {
	if src.width == p.width && src.height == p.height {
		p.CopyFrom(src)
		return
	}
	if src.width == 0 || src.height == 0 || p.width == 0 || p.height == 0 {
		return
	}
	srcImg := &image.NRGBA{
		Pix:    src.data,
		Stride: src.width * 4,
		Rect:   image.Rect(0, 0, src.width, src.height),
	}
	dstImg := &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
	xdraw.BiLinear.Scale(dstImg, dstImg.Rect, srcImg, srcImg.Rect, xdraw.Src, nil)
}

// ToImage converts the pixmap to an image.NRGBA copy.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// EncodePNG writes the pixmap to w as a PNG image.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// DecodePNG reads a PNG image from r into a new pixmap.
func DecodePNG(r io.Reader) (*Pixmap, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return FromImage(img), nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
