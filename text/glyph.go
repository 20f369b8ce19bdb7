package text

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// ShapedGlyph is one positioned glyph produced by a Shaper.
// Positions are in pixel space at the shaping resolution, relative to the
// text origin on the baseline.
type ShapedGlyph struct {
	// Rune is the Unicode character this glyph represents.
	// For ligatures, this is the first character of the ligature.
	Rune rune

	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the rune index in the source text this glyph maps to.
	// Multiple glyphs can belong to the same cluster (e.g., ligatures).
	Cluster int

	// X, Y are the pen position of the glyph relative to the text origin.
	X, Y float64

	// XAdvance, YAdvance are how far the pen moves after this glyph.
	XAdvance float64
	YAdvance float64
}
