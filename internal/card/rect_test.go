package card

import "testing"

func TestRectIntersects(t *testing.T) {
	base := RectF{X0: 10, Y0: 10, X1: 20, Y1: 20}
	cases := []struct {
		name  string
		other RectF
		want  bool
	}{
		{"overlapping", RectF{X0: 15, Y0: 15, X1: 25, Y1: 25}, true},
		{"contained", RectF{X0: 12, Y0: 12, X1: 18, Y1: 18}, true},
		{"containing", RectF{X0: 0, Y0: 0, X1: 30, Y1: 30}, true},
		{"touching right edge", RectF{X0: 20, Y0: 10, X1: 30, Y1: 20}, false},
		{"touching bottom edge", RectF{X0: 10, Y0: 20, X1: 20, Y1: 30}, false},
		{"touching corner", RectF{X0: 20, Y0: 20, X1: 30, Y1: 30}, false},
		{"disjoint", RectF{X0: 40, Y0: 40, X1: 50, Y1: 50}, false},
	}
	for _, tc := range cases {
		if got := base.Intersects(tc.other); got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
		// Symmetry.
		if got := tc.other.Intersects(base); got != tc.want {
			t.Errorf("%s: reversed Intersects = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRectInsetExpand(t *testing.T) {
	r := RectF{X0: 0, Y0: 0, X1: 100, Y1: 60}

	in := r.Inset(10)
	if in != (RectF{X0: 10, Y0: 10, X1: 90, Y1: 50}) {
		t.Errorf("Inset(10) = %+v", in)
	}
	ex := r.Expand(5)
	if ex != (RectF{X0: -5, Y0: -5, X1: 105, Y1: 65}) {
		t.Errorf("Expand(5) = %+v", ex)
	}
	if got := r.Inset(5).Expand(5); got != r {
		t.Errorf("Inset then Expand did not round-trip: %+v", got)
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := RectF{X0: 0, Y0: 0, X1: 10, Y1: 10}
	if !r.ContainsPoint(5, 5) {
		t.Error("interior point not contained")
	}
	if !r.ContainsPoint(0, 0) {
		t.Error("top-left corner not contained")
	}
	if r.ContainsPoint(10, 10) {
		t.Error("exclusive bottom-right corner reported contained")
	}
	if r.ContainsPoint(-1, 5) || r.ContainsPoint(5, 11) {
		t.Error("outside point reported contained")
	}
}

func TestRectFromSize(t *testing.T) {
	r := RectFromSize(3, 4, 10, 20)
	if r.W() != 10 || r.H() != 20 {
		t.Errorf("size = %vx%v, want 10x20", r.W(), r.H())
	}
	if r.CenterX() != 8 || r.CenterY() != 14 {
		t.Errorf("center = (%v, %v), want (8, 14)", r.CenterX(), r.CenterY())
	}
}
