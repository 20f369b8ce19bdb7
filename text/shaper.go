package text

import "sync"

// Shaper converts text to positioned glyphs at a given pixel resolution.
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: plain left-to-right advance accumulation
//   - GoTextShaper:  HarfBuzz shaping via go-text/typesetting (kerning,
//     ligatures, complex scripts)
type Shaper interface {
	// Shape converts text into positioned glyphs for the given source at
	// the given size in pixels per em.
	Shape(text string, source *FontSource, ppem float64) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the global shaper used by Shape, Layout, and width
// measurement. Pass nil to reset to the default BuiltinShaper.
//
// Example usage with the HarfBuzz-backed shaper:
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil) // Reset to default
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that uses the global shaper.
func Shape(text string, source *FontSource, ppem float64) []ShapedGlyph {
	return GetShaper().Shape(text, source, ppem)
}
