package text

import "testing"

func TestXimageParsedFont(t *testing.T) {
	parsed := regularFont(t).Parsed()

	if parsed.NumGlyphs() <= 0 {
		t.Errorf("NumGlyphs() = %d, want > 0", parsed.NumGlyphs())
	}
	if parsed.UnitsPerEm() <= 0 {
		t.Errorf("UnitsPerEm() = %d, want > 0", parsed.UnitsPerEm())
	}

	gid := parsed.GlyphIndex('A')
	if gid == 0 {
		t.Fatal("GlyphIndex('A') = 0, want a real glyph")
	}
	if adv := parsed.GlyphAdvance(gid, 100); adv <= 0 {
		t.Errorf("GlyphAdvance = %v, want > 0", adv)
	}

	// A codepoint far outside the font's coverage maps to glyph 0.
	if got := parsed.GlyphIndex('\U000E0021'); got != 0 {
		t.Errorf("GlyphIndex of uncovered rune = %d, want 0", got)
	}
}

func TestXimageFontMetrics(t *testing.T) {
	parsed := regularFont(t).Parsed()
	m := parsed.Metrics(100)

	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v, want > 0", m.Ascent)
	}
	if m.Descent >= 0 {
		t.Errorf("Descent = %v, want < 0", m.Descent)
	}
	if m.Height() < m.Ascent-m.Descent {
		t.Errorf("Height() = %v, want >= ascent - descent = %v", m.Height(), m.Ascent-m.Descent)
	}
}

func TestXimageRasterize(t *testing.T) {
	parsed := regularFont(t).Parsed()

	m, b := parsed.Rasterize('H', 100)
	if b.Empty() {
		t.Fatal("'H' rasterized to an empty bitmap")
	}
	if m.Width != b.Width || m.Height != b.Height {
		t.Errorf("metrics %dx%d disagree with bitmap %dx%d", m.Width, m.Height, b.Width, b.Height)
	}
	if m.OffsetY >= 0 {
		t.Errorf("OffsetY = %d, want negative for a glyph above the baseline", m.OffsetY)
	}
	if m.Advance <= 0 {
		t.Errorf("Advance = %v, want > 0", m.Advance)
	}

	// Space: no coverage, but a nonzero advance.
	sm, sb := parsed.Rasterize(' ', 100)
	if !sb.Empty() {
		t.Error("space rasterized with coverage")
	}
	if sm.Advance <= 0 {
		t.Errorf("space Advance = %v, want > 0", sm.Advance)
	}

	// Higher resolution yields a proportionally larger bitmap.
	m2, _ := parsed.Rasterize('H', 200)
	if m2.Height <= m.Height {
		t.Errorf("height at resolution 200 = %d, want > %d", m2.Height, m.Height)
	}
}

func TestRegisterParser(t *testing.T) {
	stub := &stubParser{}
	RegisterParser("stub-backend", stub)
	defer delete(parserRegistry, "stub-backend")

	if got := getParser("stub-backend"); got != stub {
		t.Error("getParser did not return the registered parser")
	}
	if got := getParser("never-registered"); got != parserRegistry[defaultParserName] {
		t.Error("getParser did not fall back to the default")
	}
}

// stubParser is a FontParser that accepts anything and parses nothing.
type stubParser struct{}

func (p *stubParser) Parse(data []byte) (ParsedFont, error) {
	return nil, ErrFontNotLoaded
}
