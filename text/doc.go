// Package text implements the glyph vectorization and caching pipeline.
//
// Text is drawn from triangulated vector meshes rather than textured glyph
// atlases. The pipeline for a cache miss is:
//
//	rasterize -> boundary extraction -> contour tracing -> triangulation
//
// A glyph is rasterized once at a caller-chosen pixel resolution, the
// coverage bitmap's boundary pixels are traced into closed polygon contours,
// and the contours are tessellated into a triangle mesh. The mesh is cached
// keyed by (character, resolution), so every later draw of that pair is a
// map lookup. Displaying at a different size is a pure scale transform of
// the cached mesh (GlyphSize decouples resolution from scale); only changing
// the resolution re-vectorizes.
//
// # Example usage
//
//	// Load a font under an application-defined id (do once).
//	var fonts text.Fonts[string]
//	if err := fonts.Load("body", fontBytes); err != nil {
//	    log.Fatal(err)
//	}
//
//	cache, _ := fonts.Get("body")
//	metrics, geom := cache.Glyph('A', 100)
//
//	size := text.GlyphSize{Resolution: 100, Scale: 36}
//	transform := size.Transform() // scale geom by 36/100 at draw time
//	_, _, _ = metrics, geom, transform
//
// # Pluggable Parser Backend
//
// Font parsing and rasterization are abstracted through the FontParser and
// Rasterizer interfaces. By default, golang.org/x/image/font/opentype is
// used. Register a custom backend with RegisterParser.
//
// # Shapers
//
// Width measurement and layout run through a swappable Shaper. The default
// BuiltinShaper accumulates advances left to right; GoTextShaper (opt-in via
// SetShaper) adds HarfBuzz kerning and ligatures through go-text/typesetting.
package text
