package text

// Layout shapes text for the given source at a pixel resolution and returns
// positioned glyphs with standard left-to-right advance accumulation.
//
// The text is split into direction runs first; each run is shaped
// independently by the current global Shaper and the runs are concatenated
// along the pen direction. Positions and advances are in pixel space at the
// shaping resolution: scale by GlyphSize.Ratio to map them to a rendered
// size. There is no line wrapping.
func Layout(source *FontSource, text string, resolution int) []ShapedGlyph {
	if text == "" || source == nil {
		return nil
	}
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	ppem := float64(resolution)
	shaper := GetShaper()

	segments := SegmentText(text)
	if len(segments) == 1 {
		return shaper.Shape(segments[0].Text, source, ppem)
	}

	var glyphs []ShapedGlyph
	var penX float64
	runeOffset := 0
	for _, seg := range segments {
		shaped := shaper.Shape(seg.Text, source, ppem)
		segWidth := 0.0
		for _, g := range shaped {
			segWidth += g.XAdvance
		}
		for _, g := range shaped {
			g.X += penX
			g.Cluster += runeOffset
			glyphs = append(glyphs, g)
		}
		penX += segWidth
		for range seg.Text {
			runeOffset++
		}
	}
	return glyphs
}

// Advance returns the total advance width of the laid-out text in pixels at
// the given resolution. Returns 0 for the empty string.
func Advance(source *FontSource, text string, resolution int) float64 {
	total := 0.0
	for _, g := range Layout(source, text, resolution) {
		total += g.XAdvance
	}
	return total
}
