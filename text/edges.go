package text

// pixel is an integer bitmap coordinate.
type pixel struct {
	x, y int
}

// neighborOffsets lists the 8-neighborhood in a fixed order: the four
// axis-aligned neighbors first (left, right, up, down), then the diagonals.
// Contour tracing examines candidates in this order, which pins down the
// tie-break when several neighbors are equally far.
var neighborOffsets = [8]pixel{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// boundaryPixels classifies every covered pixel of the bitmap as boundary or
// interior and returns the boundary set.
//
// A covered pixel is boundary iff 2 <= empty8 <= 4 or empty4 == 1, where
// empty8 counts uncovered pixels among the 8 full neighbors and empty4 among
// the 4 axis-aligned ones; out-of-bounds neighbors count as uncovered. The
// rule keeps thin strokes (which an "any empty neighbor" test would eat) and
// drops both deep-interior pixels and the second row of near-solid edges
// that would otherwise double the contour thickness. It is a tracing
// heuristic, not a mathematical boundary definition.
func boundaryPixels(b Bitmap) map[pixel]struct{} {
	boundary := make(map[pixel]struct{})
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if !b.On(x, y) {
				continue
			}
			empty8, empty4 := 0, 0
			for i, off := range neighborOffsets {
				if !b.On(x+off.x, y+off.y) {
					empty8++
					if i < 4 {
						empty4++
					}
				}
			}
			if (2 <= empty8 && empty8 <= 4) || empty4 == 1 {
				boundary[pixel{x, y}] = struct{}{}
			}
		}
	}
	return boundary
}
