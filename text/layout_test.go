package text

import (
	"math"
	"testing"
)

func TestLayoutEmpty(t *testing.T) {
	if got := Layout(regularFont(t), "", 100); got != nil {
		t.Errorf("Layout of empty string = %v, want nil", got)
	}
	if got := Layout(nil, "abc", 100); got != nil {
		t.Errorf("Layout with nil source = %v, want nil", got)
	}
}

func TestLayoutSingleRun(t *testing.T) {
	source := regularFont(t)
	glyphs := Layout(source, "hello", 100)
	if len(glyphs) != 5 {
		t.Fatalf("got %d glyphs, want 5", len(glyphs))
	}

	var penX float64
	for i, g := range glyphs {
		if math.Abs(g.X-penX) > 1e-9 {
			t.Errorf("glyph %d X = %v, want %v", i, g.X, penX)
		}
		penX += g.XAdvance
	}
}

func TestLayoutMixedDirections(t *testing.T) {
	source := regularFont(t)
	text := "ab שלום cd"
	glyphs := Layout(source, text, 100)

	runeCount := len([]rune(text))
	if len(glyphs) != runeCount {
		t.Fatalf("got %d glyphs, want %d", len(glyphs), runeCount)
	}

	// Runs are concatenated along the pen: X never decreases, and clusters
	// are adjusted to index into the whole string.
	prevX := math.Inf(-1)
	for i, g := range glyphs {
		if g.X < prevX {
			t.Errorf("glyph %d X = %v goes backwards from %v", i, g.X, prevX)
		}
		prevX = g.X
		if g.Cluster < 0 || g.Cluster >= runeCount {
			t.Errorf("glyph %d Cluster = %d out of range [0, %d)", i, g.Cluster, runeCount)
		}
	}
}

func TestLayoutDefaultResolution(t *testing.T) {
	source := regularFont(t)
	a := Layout(source, "x", 0)
	b := Layout(source, "x", DefaultResolution)
	if len(a) != 1 || len(b) != 1 || a[0].XAdvance != b[0].XAdvance {
		t.Errorf("Layout at resolution 0 = %+v, want same as default %+v", a, b)
	}
}

func TestAdvance(t *testing.T) {
	source := regularFont(t)

	if got := Advance(source, "", 100); got != 0 {
		t.Errorf("Advance of empty string = %v, want 0", got)
	}

	ab := Advance(source, "ab", 100)
	a := Advance(source, "a", 100)
	b := Advance(source, "b", 100)
	if math.Abs(ab-(a+b)) > 1e-9 {
		t.Errorf("Advance(ab) = %v, want %v with the builtin shaper", ab, a+b)
	}
	if ab <= 0 {
		t.Errorf("Advance = %v, want > 0", ab)
	}
}
