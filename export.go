package whiteboard

import (
	"bytes"
	"fmt"
)

// Export is a standalone image artifact produced from one page, ready for
// the host to hand to the user.
type Export struct {
	// Filename is derived from the session name and the page's 1-based
	// position: "<session-name-or-untitled>_page_<n>.png".
	Filename string

	// PNG holds the encoded image bytes.
	PNG []byte
}

// ExportActivePage flattens the active page onto a white background, so
// erased (transparent) regions appear as white rather than absent, and
// encodes it as a PNG. Fails with ErrNoActivePage when the board has no
// pages.
func (b *Board) ExportActivePage() (*Export, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active < 0 {
		return nil, ErrNoActivePage
	}

	var buf bytes.Buffer
	if err := flattenPage(b.pages[b.active]).EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("export page %d: %w", b.active+1, err)
	}

	name := b.session
	if name == "" {
		name = "untitled"
	}
	return &Export{
		Filename: fmt.Sprintf("%s_page_%d.png", name, b.active+1),
		PNG:      buf.Bytes(),
	}, nil
}

// flattenPage composes a same-size buffer, fills it white, and draws the
// page's raster on top. Shared by export and session save.
func flattenPage(pg *Page) *Pixmap {
	flat := NewPixmap(pg.canvas.Width(), pg.canvas.Height())
	flat.Clear(White)
	flat.DrawOver(pg.canvas.Pixmap())
	return flat
}
