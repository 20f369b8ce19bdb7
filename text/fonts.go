package text

import (
	"fmt"

	"github.com/vecglyph/vecglyph"
)

// Fonts maps application-defined font identifiers to glyph caches.
// Any comparable type works as the identifier: an enum-style int, a string
// name, or struct{} when there is only one font.
//
// The zero value is ready to use. Entries are added by Load and persist
// until explicitly removed or the whole collection is dropped; nothing is
// evicted automatically.
//
// Fonts is not safe for concurrent mutation; it is owned by whichever
// context drives rendering, matching the single render-thread model of the
// glyph caches it holds.
type Fonts[ID comparable] struct {
	entries map[ID]*GlyphCache
}

// Load parses font bytes and inserts (or replaces) the entry for id with a
// fresh glyph cache. On parse failure the error is returned and the existing
// entry, if any, is left untouched.
func (f *Fonts[ID]) Load(id ID, data []byte, opts ...SourceOption) error {
	source, err := NewFontSource(data, opts...)
	if err != nil {
		return err
	}
	if f.entries == nil {
		f.entries = make(map[ID]*GlyphCache)
	}
	f.entries[id] = NewGlyphCache(source)
	return nil
}

// Get returns the glyph cache for id.
// The second result is false if no font was loaded under that id; callers
// drawing text should substitute a no-op rather than treat this as fatal.
func (f *Fonts[ID]) Get(id ID) (*GlyphCache, bool) {
	cache, ok := f.entries[id]
	return cache, ok
}

// Default returns the glyph cache for the zero value of ID. With a
// single-font collection keyed by struct{} or an enum whose zero value is
// the primary font, this reads as "the default font".
func (f *Fonts[ID]) Default() (*GlyphCache, bool) {
	var zero ID
	return f.Get(zero)
}

// Must returns the glyph cache for id and panics with an error wrapping
// ErrFontNotLoaded if the font was never loaded. Use Get where a missing
// font is recoverable.
func (f *Fonts[ID]) Must(id ID) *GlyphCache {
	cache, ok := f.entries[id]
	if !ok {
		panic(fmt.Errorf("%w: id %v", ErrFontNotLoaded, id))
	}
	return cache
}

// Remove drops the entry for id, releasing its cached geometry.
func (f *Fonts[ID]) Remove(id ID) {
	delete(f.entries, id)
}

// Clear drops all entries.
func (f *Fonts[ID]) Clear() {
	f.entries = nil
}

// Len returns the number of loaded fonts.
func (f *Fonts[ID]) Len() int {
	return len(f.entries)
}

// Width measures text using the font and size in spec. A missing font
// measures as 0, mirroring the no-op draw a missing font produces.
func (f *Fonts[ID]) Width(text string, spec GlyphSpec[ID]) float64 {
	cache, ok := f.Get(spec.FontID)
	if !ok {
		vecglyph.Logger().Warn("text: width requested for unloaded font", "id", fmt.Sprint(spec.FontID))
		return 0
	}
	return cache.Width(text, spec.Size)
}
