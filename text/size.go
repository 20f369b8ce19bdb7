package text

import "github.com/vecglyph/vecglyph"

// DefaultResolution is the rasterization resolution used when a GlyphSize
// does not specify one. 100 pixels per em resolves typical glyph topology
// (counters, thin strokes) without producing oversized meshes.
const DefaultResolution = 100

// GlyphSize decouples vector detail from rendered size.
//
// Resolution is the pixel size used when rasterizing and vectorizing the
// glyph: it determines cache-key identity and mesh fidelity. Scale is the
// size the text is displayed at: it is applied as a pure transform after the
// cache lookup. Many display sizes therefore share one cached mesh; only a
// Resolution change forces re-vectorization.
type GlyphSize struct {
	// Resolution is the pixel resolution used when rasterizing then
	// vectorizing the glyph. Zero means DefaultResolution.
	Resolution int

	// Scale is the actual text size to render at.
	Scale float64
}

// NewGlyphSize creates a GlyphSize with the given scale and the default
// resolution.
func NewGlyphSize(scale float64) GlyphSize {
	return GlyphSize{Resolution: DefaultResolution, Scale: scale}
}

// WithResolution returns a copy with the given resolution.
func (s GlyphSize) WithResolution(resolution int) GlyphSize {
	s.Resolution = resolution
	return s
}

// Ratio returns the ratio of scale to resolution.
func (s GlyphSize) Ratio() float64 {
	return s.Scale / float64(s.resolution())
}

// Transform returns the uniform scale transform that maps cached glyph
// geometry to the rendered size.
func (s GlyphSize) Transform() vecglyph.Matrix {
	return vecglyph.Zoom(s.Ratio())
}

func (s GlyphSize) resolution() int {
	if s.Resolution <= 0 {
		return DefaultResolution
	}
	return s.Resolution
}

// GlyphSpec pairs a font id with a size, identifying everything needed to
// measure or draw text through a Fonts collection.
type GlyphSpec[ID comparable] struct {
	// FontID is the application-defined font identifier.
	FontID ID

	// Size is the glyph size.
	Size GlyphSize
}

// SpecOf creates a GlyphSpec with the given font id, the given scale, and
// the default resolution.
func SpecOf[ID comparable](id ID, scale float64) GlyphSpec[ID] {
	return GlyphSpec[ID]{FontID: id, Size: NewGlyphSize(scale)}
}
