package text

// GlyphKey uniquely identifies cached glyph geometry within one font.
// Two requests for the same character at different resolutions are distinct
// entries: resolution is baked into the geometry, not applied as a runtime
// scale.
type GlyphKey struct {
	// Ch is the Unicode scalar value.
	Ch rune

	// Resolution is the pixel size the glyph was vectorized at.
	Resolution int
}

// glyphEntry is one cached vectorization result.
type glyphEntry struct {
	metrics  Metrics
	geometry *GlyphGeometry
}

// GlyphCache stores the vectorized geometry of one font's glyphs, keyed by
// (character, resolution). Entries are computed lazily on first request and
// never change afterward: the pipeline is a pure function of its key, so the
// cache needs no invalidation for the life of its font.
//
// GlyphCache is safe for concurrent use, though the intended model is one
// render thread doing lookups in-line with draw calls. A cache miss pays the
// full vectorization cost; hits are a map lookup returning the shared
// geometry pointer.
type GlyphCache struct {
	source  *FontSource
	rast    Rasterizer
	entries *Cache[GlyphKey, glyphEntry]
}

// NewGlyphCache creates a glyph cache backed by the source's parsed font.
func NewGlyphCache(source *FontSource) *GlyphCache {
	return &GlyphCache{
		source:  source,
		rast:    source.Parsed(),
		entries: NewCache[GlyphKey, glyphEntry](0),
	}
}

// NewGlyphCacheWithRasterizer creates a glyph cache over a bare Rasterizer,
// without a FontSource. Width measurement falls back to summing per-glyph
// metric advances. This is mainly useful for custom rasterizer backends and
// for tests.
func NewGlyphCacheWithRasterizer(rast Rasterizer) *GlyphCache {
	return &GlyphCache{
		rast:    rast,
		entries: NewCache[GlyphKey, glyphEntry](0),
	}
}

// Source returns the FontSource backing this cache, or nil if the cache was
// built from a bare Rasterizer.
func (c *GlyphCache) Source() *FontSource {
	return c.source
}

// Glyph returns the metrics and triangulated geometry for the character at
// the given resolution, vectorizing on first request and answering from the
// cache afterward. A non-positive resolution means DefaultResolution.
//
// The returned geometry pointer is shared with the cache and every other
// caller of the same key; treat it as read-only. It stays valid for the life
// of the cache.
func (c *GlyphCache) Glyph(ch rune, resolution int) (Metrics, *GlyphGeometry) {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	entry := c.entries.GetOrCreate(GlyphKey{Ch: ch, Resolution: resolution}, func() glyphEntry {
		metrics, geometry := Vectorize(c.rast, ch, resolution)
		return glyphEntry{metrics: metrics, geometry: geometry}
	})
	return entry.metrics, entry.geometry
}

// Metrics returns just the metrics for the character at the given
// resolution. Equivalent to Glyph with the geometry discarded; the geometry
// is still computed and cached.
func (c *GlyphCache) Metrics(ch rune, resolution int) Metrics {
	metrics, _ := c.Glyph(ch, resolution)
	return metrics
}

// Width lays out the text horizontally at the size's resolution and returns
// the total advance width scaled to the rendered size. Returns 0 for the
// empty string.
func (c *GlyphCache) Width(text string, size GlyphSize) float64 {
	if text == "" {
		return 0
	}
	resolution := size.resolution()

	if c.source == nil {
		total := 0.0
		for _, r := range text {
			total += c.Metrics(r, resolution).Advance
		}
		return total * size.Ratio()
	}

	total := 0.0
	for _, g := range Layout(c.source, text, resolution) {
		total += g.XAdvance
	}
	return total * size.Ratio()
}

// Len returns the number of cached (character, resolution) entries.
func (c *GlyphCache) Len() int {
	return c.entries.Len()
}

// Clear drops all cached geometry. Cached entries never go stale, so this
// is only useful to reclaim memory.
func (c *GlyphCache) Clear() {
	c.entries.Clear()
}
