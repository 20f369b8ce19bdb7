package text

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{
		font:  f,
		faces: make(map[int]font.Face),
	}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *opentype.Font

	// mu protects faces. font.Face is not safe for concurrent use, so the
	// whole Rasterize call holds the lock.
	mu    sync.Mutex
	faces map[int]font.Face // one face per rasterization resolution
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && buf != "" {
		return buf
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	var buf sfnt.Buffer

	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), fixed.Int26_6(ppem*64), font.HintingFull)
	if err != nil {
		return 0
	}

	return fixedToFloat64(advance)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	var buf sfnt.Buffer

	metrics, err := f.font.Metrics(&buf, fixed.Int26_6(ppem*64), font.HintingFull)
	if err != nil {
		return FontMetrics{}
	}

	return FontMetrics{
		Ascent:    fixedToFloat64(metrics.Ascent),
		Descent:   fixedToFloat64(metrics.Descent),
		LineGap:   fixedToFloat64(metrics.Height) - fixedToFloat64(metrics.Ascent) + fixedToFloat64(metrics.Descent),
		XHeight:   fixedToFloat64(metrics.XHeight),
		CapHeight: fixedToFloat64(metrics.CapHeight),
	}
}

// Rasterize implements Rasterizer. The glyph is rendered with its dot at the
// origin, so the returned bounds carry the bearing relative to the baseline.
// Missing glyphs and whitespace yield an empty bitmap, never an error.
func (f *ximageParsedFont) Rasterize(ch rune, resolution int) (Metrics, Bitmap) {
	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.face(resolution)
	if err != nil {
		return Metrics{}, Bitmap{}
	}

	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, ch)
	if !ok {
		return Metrics{}, Bitmap{}
	}

	m := Metrics{
		Width:   dr.Dx(),
		Height:  dr.Dy(),
		OffsetX: dr.Min.X,
		OffsetY: dr.Min.Y,
		Advance: fixedToFloat64(advance),
	}
	if m.Width <= 0 || m.Height <= 0 {
		// Zero-coverage glyph (space, etc.) still carries an advance.
		return Metrics{Advance: m.Advance}, Bitmap{}
	}

	pix := make([]byte, m.Width*m.Height)
	if alpha, isAlpha := mask.(*image.Alpha); isAlpha {
		for y := 0; y < m.Height; y++ {
			row := alpha.Pix[(maskp.Y+y-alpha.Rect.Min.Y)*alpha.Stride+(maskp.X-alpha.Rect.Min.X):]
			copy(pix[y*m.Width:(y+1)*m.Width], row[:m.Width])
		}
	} else {
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
				pix[y*m.Width+x] = byte(a >> 8)
			}
		}
	}

	return m, Bitmap{Width: m.Width, Height: m.Height, Pix: pix}
}

// face returns the cached rendering face for a resolution, creating it on
// first use. Caller must hold f.mu.
func (f *ximageParsedFont) face(resolution int) (font.Face, error) {
	if face, ok := f.faces[resolution]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(resolution),
		DPI:     72, // size in points == pixels per em at 72 DPI
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face at resolution %d: %w", resolution, err)
	}
	f.faces[resolution] = face
	return face, nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
