package text

import (
	"github.com/vecglyph/vecglyph"
	"github.com/vecglyph/vecglyph/tess"
)

// Vectorize runs the full pipeline for one character: rasterize at the given
// resolution, classify boundary pixels, trace contours, and tessellate them
// into a triangle mesh.
//
// The result is a pure function of (rasterizer, ch, resolution): repeated
// calls produce identical metrics and geometry. Characters that rasterize to
// an empty bitmap (whitespace, missing glyphs) yield empty geometry and are
// not an error.
func Vectorize(rast Rasterizer, ch rune, resolution int) (Metrics, *GlyphGeometry) {
	metrics, bitmap := rast.Rasterize(ch, resolution)

	boundary := boundaryPixels(bitmap)
	contours := traceContours(boundary)
	if len(contours) == 0 {
		return metrics, &GlyphGeometry{}
	}

	// Each traced contour becomes one closed path: move-to the first point,
	// line-to the rest, implicit closing edge. Composition uses the even-odd
	// fill rule: the walk does not guarantee consistent winding direction,
	// and even-odd makes inner contours cut holes regardless of orientation.
	var path tess.Path
	for _, contour := range contours {
		path.MoveTo(float64(contour[0].x), float64(contour[0].y))
		for _, p := range contour[1:] {
			path.LineTo(float64(p.x), float64(p.y))
		}
		path.Close()
	}
	mesh := tess.Fill(&path, tess.FillRuleEvenOdd)

	vecglyph.Logger().Debug("text: vectorized glyph",
		"char", string(ch),
		"resolution", resolution,
		"boundary_pixels", len(boundary),
		"contours", len(contours),
		"vertices", len(mesh.Vertices),
		"triangles", mesh.TriangleCount(),
	)

	return metrics, &GlyphGeometry{Vertices: mesh.Vertices, Indices: mesh.Indices}
}
