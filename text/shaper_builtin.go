package text

// BuiltinShaper positions glyphs by plain left-to-right advance
// accumulation over the parsed font's metrics. It supports Latin, Cyrillic,
// Greek, CJK, and other scripts that don't require complex shaping.
//
// It performs no ligature substitution, kerning, or right-to-left
// reordering. For those, use SetShaper with a GoTextShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, source *FontSource, ppem float64) []ShapedGlyph {
	if text == "" || source == nil {
		return nil
	}
	parsed := source.Parsed()
	if parsed == nil {
		return nil
	}

	runes := []rune(text)
	result := make([]ShapedGlyph, 0, len(runes))

	var x float64
	for cluster, r := range runes {
		gid := parsed.GlyphIndex(r)
		advance := parsed.GlyphAdvance(gid, ppem)

		result = append(result, ShapedGlyph{
			Rune:     r,
			GID:      GlyphID(gid),
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		})
		x += advance
	}
	return result
}
