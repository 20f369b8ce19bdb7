package text

// Bitmap is a glyph coverage bitmap: one coverage byte per pixel in row-major
// order. Zero means fully transparent; any nonzero value counts as covered.
type Bitmap struct {
	Width, Height int
	Pix           []byte
}

// At returns the coverage byte at (x, y).
// Out-of-bounds coordinates return 0.
func (b Bitmap) At(x, y int) byte {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// On reports whether the pixel at (x, y) is covered.
func (b Bitmap) On(x, y int) bool {
	return b.At(x, y) > 0
}

// Empty reports whether no pixel is covered. Whitespace characters
// rasterize to empty bitmaps.
func (b Bitmap) Empty() bool {
	for _, p := range b.Pix {
		if p > 0 {
			return false
		}
	}
	return true
}

// Metrics describes a glyph's placement at the resolution it was rasterized
// at. Coordinates are pixel-space with y growing downward: (OffsetX, OffsetY)
// is the top-left corner of the coverage bitmap relative to the baseline
// origin, so OffsetY is negative for glyphs that extend above the baseline.
// Metrics are immutable once computed.
type Metrics struct {
	// Width, Height are the coverage bitmap dimensions in pixels.
	Width, Height int

	// OffsetX, OffsetY position the bitmap relative to the baseline origin.
	OffsetX, OffsetY int

	// Advance is the horizontal distance to the next glyph origin.
	Advance float64
}

// Bounds returns the glyph bounding box relative to the baseline origin.
func (m Metrics) Bounds() Rect {
	return Rect{
		MinX: float64(m.OffsetX),
		MinY: float64(m.OffsetY),
		MaxX: float64(m.OffsetX + m.Width),
		MaxY: float64(m.OffsetY + m.Height),
	}
}

// Rasterizer produces coverage bitmaps for characters at a pixel resolution.
//
// Implementations must be deterministic: the same (character, resolution)
// pair always yields identical metrics and coverage bytes. Characters the
// font has no glyph for, and whitespace, yield an empty bitmap and are not
// an error.
type Rasterizer interface {
	Rasterize(ch rune, resolution int) (Metrics, Bitmap)
}
