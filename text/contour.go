package text

import "sort"

// traceContours groups boundary pixels into closed polygonal contours.
//
// While pixels remain, a new contour starts at the smallest remaining pixel
// in (y, x) order (any start works for correctness; a fixed one makes output
// bit-identical across runs). The walk repeatedly looks at the contour's
// last pixel, removes all of its 8-neighbors from the remaining set, and
// appends the one farthest away under |dx| + |dy|. Jumping to the farthest
// neighbor skips the diagonal stair-step pixels that sit between the current
// pixel and the far side of a corner, keeping the polygon from folding back
// on itself on thin strokes. Ties keep the earliest candidate in the fixed
// neighbor scan order.
//
// A glyph with holes produces one contour per boundary loop. Stray isolated
// pixels produce single-point contours; the tessellator discards them as
// zero-area.
func traceContours(boundary map[pixel]struct{}) [][]pixel {
	if len(boundary) == 0 {
		return nil
	}

	remaining := make(map[pixel]struct{}, len(boundary))
	starts := make([]pixel, 0, len(boundary))
	for p := range boundary {
		remaining[p] = struct{}{}
		starts = append(starts, p)
	}
	sort.Slice(starts, func(i, j int) bool {
		if starts[i].y != starts[j].y {
			return starts[i].y < starts[j].y
		}
		return starts[i].x < starts[j].x
	})

	var contours [][]pixel
	for _, first := range starts {
		if _, ok := remaining[first]; !ok {
			continue
		}
		delete(remaining, first)
		contour := []pixel{first}

		for {
			p := contour[len(contour)-1]
			next, found := consumeFarthestNeighbor(p, remaining)
			if !found {
				break
			}
			contour = append(contour, next)
		}
		contours = append(contours, contour)
	}
	return contours
}

// consumeFarthestNeighbor removes every remaining 8-neighbor of p and
// returns the one with the greatest combined axis distance from p.
// Returns found == false if p has no remaining neighbors (contour finished).
func consumeFarthestNeighbor(p pixel, remaining map[pixel]struct{}) (next pixel, found bool) {
	best := -1
	for _, off := range neighborOffsets {
		n := pixel{p.x + off.x, p.y + off.y}
		if _, ok := remaining[n]; !ok {
			continue
		}
		delete(remaining, n)
		d := absInt(n.x-p.x) + absInt(n.y-p.y)
		if d > best {
			best = d
			next = n
			found = true
		}
	}
	return next, found
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
