// Package tess converts closed 2D polygon paths into triangle meshes.
//
// The tessellator implements fill-rule semantics over one or more closed
// contours: outer contours add fill, nested contours subtract it, which is
// exactly what glyphs with holes (like 'o') need. Input paths are built with
// MoveTo/LineTo/Close; Fill returns deduplicated vertices and a triangle
// index list covering the filled region.
//
// The algorithm is a scanline trapezoid decomposition. It is O(n log n) in
// the number of edges, numerically robust for the integer-derived contours
// produced by glyph vectorization, and tolerant of degenerate input:
// contours with fewer than three points or zero area contribute nothing.
package tess

import (
	"math"
	"sort"

	"github.com/vecglyph/vecglyph"
)

// FillRule determines which regions of overlapping or nested contours are
// considered inside the filled shape.
type FillRule int

const (
	// FillRuleEvenOdd fills regions crossed by an odd number of edges.
	// Nesting alternates fill regardless of contour winding direction.
	FillRuleEvenOdd FillRule = iota

	// FillRuleNonZero fills regions with a nonzero winding number.
	FillRuleNonZero
)

// String returns the string representation of the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleEvenOdd:
		return "EvenOdd"
	case FillRuleNonZero:
		return "NonZero"
	default:
		return "Unknown"
	}
}

// Path is a sequence of closed polygon contours.
// Build it with MoveTo/LineTo/Close; every contour is treated as closed,
// with an implicit edge from the last point back to the first.
type Path struct {
	contours [][]vecglyph.Vec2
	current  []vecglyph.Vec2
}

// MoveTo starts a new contour at (x, y).
// Any contour in progress is finished first (implicitly closed).
func (p *Path) MoveTo(x, y float64) {
	p.flush()
	p.current = append(p.current, vecglyph.V2(x, y))
}

// LineTo appends a point to the current contour.
// Calling LineTo before MoveTo starts a contour at (x, y).
func (p *Path) LineTo(x, y float64) {
	p.current = append(p.current, vecglyph.V2(x, y))
}

// Close finishes the current contour.
// The closing edge back to the contour's first point is implicit.
func (p *Path) Close() {
	p.flush()
}

// Contours returns the finished contours, including any contour still in
// progress.
func (p *Path) Contours() [][]vecglyph.Vec2 {
	if len(p.current) > 0 {
		out := make([][]vecglyph.Vec2, 0, len(p.contours)+1)
		out = append(out, p.contours...)
		return append(out, p.current)
	}
	return p.contours
}

// Empty reports whether the path has no contours.
func (p *Path) Empty() bool {
	return len(p.contours) == 0 && len(p.current) == 0
}

func (p *Path) flush() {
	if len(p.current) > 0 {
		p.contours = append(p.contours, p.current)
		p.current = nil
	}
}

// Mesh is a triangle-list mesh: deduplicated vertex positions plus triangle
// indices, three per triangle.
//
// Invariants: len(Indices) is a multiple of 3 and every index is less than
// len(Vertices).
type Mesh struct {
	Vertices []vecglyph.Vec2
	Indices  []uint16
}

// TriangleCount returns the number of triangles in the mesh.
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Empty reports whether the mesh has no triangles.
func (m Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// Contains reports whether the point lies inside any triangle of the mesh.
// Points exactly on a triangle edge count as inside.
func (m Mesh) Contains(pt vecglyph.Vec2) bool {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		if pointInTriangle(pt, a, b, c) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c vecglyph.Vec2) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// maxMeshVertices is the largest vertex count addressable by uint16 indices.
const maxMeshVertices = math.MaxUint16 + 1

// edge is a non-horizontal contour segment normalized so top.Y < bottom.Y.
// winding is +1 if the original segment pointed downward, -1 otherwise.
type edge struct {
	top, bottom vecglyph.Vec2
	winding     int
}

// xAt returns the x coordinate where the edge crosses the horizontal line y.
func (e edge) xAt(y float64) float64 {
	t := (y - e.top.Y) / (e.bottom.Y - e.top.Y)
	return e.top.X + t*(e.bottom.X-e.top.X)
}

// crossing is an edge's intersection with a scanline band.
type crossing struct {
	xTop, xBottom float64
	xMid          float64
	winding       int
}

// Fill tessellates the path into a triangle mesh under the given fill rule.
//
// The path is decomposed into horizontal bands delimited by contour vertex
// y coordinates. Within each band every edge crossing is a straight segment,
// so sorting crossings by x and selecting in-fill spans per the fill rule
// yields trapezoids, each emitted as two triangles. Vertices shared between
// adjacent trapezoids and bands are deduplicated.
//
// Degenerate contours (fewer than three points, zero height) are ignored.
// An empty path yields an empty mesh.
func Fill(p *Path, rule FillRule) Mesh {
	edges := collectEdges(p.Contours())
	if len(edges) == 0 {
		return Mesh{}
	}

	ys := bandBoundaries(edges)

	b := newMeshBuilder()
	crossings := make([]crossing, 0, len(edges))
	for i := 0; i+1 < len(ys); i++ {
		yTop, yBottom := ys[i], ys[i+1]
		if yBottom-yTop <= 0 {
			continue
		}
		yMid := (yTop + yBottom) / 2

		crossings = crossings[:0]
		for _, e := range edges {
			if e.top.Y <= yMid && yMid < e.bottom.Y {
				crossings = append(crossings, crossing{
					xTop:    e.xAt(yTop),
					xBottom: e.xAt(yBottom),
					xMid:    e.xAt(yMid),
					winding: e.winding,
				})
			}
		}
		if len(crossings) < 2 {
			continue
		}
		sort.Slice(crossings, func(a, b int) bool {
			return crossings[a].xMid < crossings[b].xMid
		})

		winding := 0
		for j := 0; j+1 < len(crossings); j++ {
			winding += crossings[j].winding
			inside := false
			switch rule {
			case FillRuleNonZero:
				inside = winding != 0
			default:
				inside = (j+1)%2 == 1
			}
			if !inside {
				continue
			}
			left, right := crossings[j], crossings[j+1]
			b.addTrapezoid(yTop, yBottom, left, right)
		}
	}
	return b.mesh()
}

// collectEdges flattens contours into normalized non-horizontal edges.
func collectEdges(contours [][]vecglyph.Vec2) []edge {
	var edges []edge
	for _, contour := range contours {
		if len(contour) < 3 {
			continue
		}
		for i := range contour {
			a := contour[i]
			c := contour[(i+1)%len(contour)]
			if a.Y == c.Y {
				continue // horizontal edges never cross a scanline
			}
			if a.Y < c.Y {
				edges = append(edges, edge{top: a, bottom: c, winding: 1})
			} else {
				edges = append(edges, edge{top: c, bottom: a, winding: -1})
			}
		}
	}
	return edges
}

// bandBoundaries returns the sorted, deduplicated y coordinates of all edge
// endpoints. Consecutive pairs delimit the scanline bands.
func bandBoundaries(edges []edge) []float64 {
	ys := make([]float64, 0, len(edges)*2)
	for _, e := range edges {
		ys = append(ys, e.top.Y, e.bottom.Y)
	}
	sort.Float64s(ys)
	out := ys[:0]
	for i, y := range ys {
		if i == 0 || y != out[len(out)-1] {
			out = append(out, y)
		}
	}
	return out
}

// vertexKey quantizes a position for deduplication. Band boundaries are
// contour vertex coordinates and crossings are exact linear interpolations,
// so matching vertices from adjacent trapezoids agree to well below the
// quantization step.
type vertexKey struct {
	x, y int64
}

const vertexQuantum = 1.0 / 4096

func keyOf(v vecglyph.Vec2) vertexKey {
	return vertexKey{
		x: int64(math.Round(v.X / vertexQuantum)),
		y: int64(math.Round(v.Y / vertexQuantum)),
	}
}

type meshBuilder struct {
	vertices []vecglyph.Vec2
	indices  []uint16
	lookup   map[vertexKey]uint16
	overflow bool
}

func newMeshBuilder() *meshBuilder {
	return &meshBuilder{lookup: make(map[vertexKey]uint16)}
}

// vertex returns the index for the position, inserting it if new.
// Returns false once the uint16 index space is exhausted.
func (b *meshBuilder) vertex(v vecglyph.Vec2) (uint16, bool) {
	k := keyOf(v)
	if idx, ok := b.lookup[k]; ok {
		return idx, true
	}
	if len(b.vertices) >= maxMeshVertices {
		b.overflow = true
		return 0, false
	}
	idx := uint16(len(b.vertices))
	b.vertices = append(b.vertices, v)
	b.lookup[k] = idx
	return idx, true
}

// addTriangle appends one triangle, skipping zero-area degenerates.
func (b *meshBuilder) addTriangle(v0, v1, v2 vecglyph.Vec2) {
	if v1.Sub(v0).Cross(v2.Sub(v0)) == 0 {
		return
	}
	i0, ok0 := b.vertex(v0)
	i1, ok1 := b.vertex(v1)
	i2, ok2 := b.vertex(v2)
	if !ok0 || !ok1 || !ok2 {
		return
	}
	b.indices = append(b.indices, i0, i1, i2)
}

// addTrapezoid emits the band slab between two crossings as two triangles.
func (b *meshBuilder) addTrapezoid(yTop, yBottom float64, left, right crossing) {
	tl := vecglyph.V2(left.xTop, yTop)
	tr := vecglyph.V2(right.xTop, yTop)
	br := vecglyph.V2(right.xBottom, yBottom)
	bl := vecglyph.V2(left.xBottom, yBottom)

	b.addTriangle(tl, tr, br)
	b.addTriangle(tl, br, bl)
}

func (b *meshBuilder) mesh() Mesh {
	if b.overflow {
		vecglyph.Logger().Warn("tess: mesh exceeds uint16 index space, output truncated",
			"vertices", len(b.vertices))
	}
	return Mesh{Vertices: b.vertices, Indices: b.indices}
}
