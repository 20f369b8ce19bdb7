// Package vecglyph converts rasterized font glyphs into cached, reusable
// triangle meshes so text can be drawn resolution-independently with the
// same pipeline used for vector shapes.
//
// # Overview
//
// Most text renderers rasterize glyphs into a texture atlas and draw quads.
// vecglyph instead rasterizes a glyph once at a chosen resolution, traces the
// coverage bitmap back into closed polygon contours, triangulates the result,
// and caches the mesh keyed by (character, resolution). Scaling the cached
// mesh to any display size is then a pure transform, so a single cache entry
// serves every rendered size at that detail level.
//
// # Quick Start
//
//	import "github.com/vecglyph/vecglyph/text"
//
//	var fonts text.Fonts[struct{}]
//	if err := fonts.Load(struct{}{}, fontBytes); err != nil {
//	    log.Fatal(err)
//	}
//	cache, _ := fonts.Get(struct{}{})
//
//	// Vectorize 'A' at resolution 100 (cached after the first call).
//	metrics, geom := cache.Glyph('A', 100)
//
//	// Display at size 36: scale the cached mesh, never re-vectorize.
//	size := text.GlyphSize{Resolution: 100, Scale: 36}
//	transform := size.Transform()
//	_ = metrics
//	_, _ = geom, transform
//
// # Architecture
//
// The module is organized into:
//   - Root package: Vec2, Matrix, logging surface shared by sub-packages
//   - text: font loading, rasterization, boundary extraction, contour
//     tracing, glyph/font caches, layout and width measurement
//   - tess: polygon fill tessellation (contours in, triangle mesh out)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Glyph geometry is in bitmap pixel space; metrics carry the bearing that
// places the bitmap relative to the baseline origin.
package vecglyph
