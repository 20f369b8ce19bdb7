package vecglyph

import (
	"math"
	"testing"
)

func TestVec2_Creation(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"zero", 0, 0},
		{"positive", 3, 4},
		{"negative", -1, -2},
		{"fractional", 1.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := V2(tt.x, tt.y)
			if v.X != tt.x || v.Y != tt.y {
				t.Errorf("V2(%v, %v) = %v, want (%v, %v)", tt.x, tt.y, v, tt.x, tt.y)
			}
		})
	}
}

func TestVec2_Arithmetic(t *testing.T) {
	v := V2(1, 2)
	w := V2(3, -4)

	if got := v.Add(w); got != V2(4, -2) {
		t.Errorf("Add = %v, want (4, -2)", got)
	}
	if got := v.Sub(w); got != V2(-2, 6) {
		t.Errorf("Sub = %v, want (-2, 6)", got)
	}
	if got := v.Mul(2); got != V2(2, 4) {
		t.Errorf("Mul = %v, want (2, 4)", got)
	}
	if got := v.Div(2); got != V2(0.5, 1) {
		t.Errorf("Div = %v, want (0.5, 1)", got)
	}
	if got := v.Neg(); got != V2(-1, -2) {
		t.Errorf("Neg = %v, want (-1, -2)", got)
	}
}

func TestVec2_DotCross(t *testing.T) {
	v := V2(1, 0)
	w := V2(0, 1)

	if got := v.Dot(w); got != 0 {
		t.Errorf("Dot of perpendicular vectors = %v, want 0", got)
	}
	if got := v.Cross(w); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
	if got := w.Cross(v); got != -1 {
		t.Errorf("Cross reversed = %v, want -1", got)
	}
}

func TestVec2_Length(t *testing.T) {
	v := V2(3, 4)
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := v.LengthSq(); got != 25 {
		t.Errorf("LengthSq = %v, want 25", got)
	}

	n := v.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Normalize().Length() = %v, want 1", n.Length())
	}
	if got := (Vec2{}).Normalize(); !got.IsZero() {
		t.Errorf("Normalize of zero vector = %v, want zero", got)
	}
}

func TestVec2_Lerp(t *testing.T) {
	v := V2(0, 0)
	w := V2(10, 20)

	if got := v.Lerp(w, 0); got != v {
		t.Errorf("Lerp(0) = %v, want %v", got, v)
	}
	if got := v.Lerp(w, 1); got != w {
		t.Errorf("Lerp(1) = %v, want %v", got, w)
	}
	if got := v.Lerp(w, 0.5); got != V2(5, 10) {
		t.Errorf("Lerp(0.5) = %v, want (5, 10)", got)
	}
}

func TestVec2_Approx(t *testing.T) {
	v := V2(1, 1)
	if !v.Approx(V2(1+1e-10, 1-1e-10), 1e-9) {
		t.Error("expected vectors within epsilon to be approximately equal")
	}
	if v.Approx(V2(1.1, 1), 1e-9) {
		t.Error("expected vectors outside epsilon to differ")
	}
}
