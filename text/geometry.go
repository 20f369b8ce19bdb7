package text

import (
	"github.com/vecglyph/vecglyph"
	"github.com/vecglyph/vecglyph/tess"
)

// GlyphGeometry is the triangulated vector mesh for one glyph at one
// resolution: vertex positions in bitmap pixel space plus triangle indices,
// three per triangle.
//
// Invariants: len(Indices) is a multiple of 3 and every index is less than
// len(Vertices). Whitespace and missing glyphs have empty geometry.
//
// The owning GlyphCache holds the canonical copy; callers receive a shared
// pointer and must treat the slices as read-only.
type GlyphGeometry struct {
	Vertices []vecglyph.Vec2
	Indices  []uint16
}

// Empty reports whether the geometry has no triangles.
func (g *GlyphGeometry) Empty() bool {
	return len(g.Indices) == 0
}

// TriangleCount returns the number of triangles.
func (g *GlyphGeometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Contains reports whether the point (in bitmap pixel space) lies inside the
// filled mesh. Mainly useful for hit testing and tests.
func (g *GlyphGeometry) Contains(pt vecglyph.Vec2) bool {
	return tess.Mesh{Vertices: g.Vertices, Indices: g.Indices}.Contains(pt)
}
