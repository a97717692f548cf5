package geo

import (
	"math"
	"testing"
)

func TestRectCenter(t *testing.T) {
	r := R(10, 20, 4, 6)
	c := r.Center()
	if c.X != 12 || c.Y != 23 {
		t.Errorf("center = (%v, %v), want (12, 23)", c.X, c.Y)
	}
}

func TestRectInset(t *testing.T) {
	r := R(0, 0, 10, 8).Inset(1)
	if r.X != 1 || r.Y != 1 || r.W != 8 || r.H != 6 {
		t.Errorf("inset = %+v, want {1 1 8 6}", r)
	}
}

func TestRectInsetEmpty(t *testing.T) {
	r := R(0, 0, 3, 3).Inset(2)
	if !r.IsEmpty() {
		t.Errorf("inset beyond half-extent should be empty, got %+v", r)
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := R(0, 0, 100, 70)
	tests := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"fully inside", R(10, 10, 20, 20), true},
		{"shared edge", R(0, 0, 100, 70), true},
		{"spills right", R(90, 10, 20, 10), false},
		{"spills below", R(10, -5, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.inner); got != tt.want {
				t.Errorf("ContainsRect(%+v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestRectClampFits(t *testing.T) {
	outer := R(0, 0, 20, 20)
	q, adjusted := outer.Clamp(R(5, 5, 4, 4))
	if adjusted {
		t.Errorf("rect already inside should not be adjusted")
	}
	if q != R(5, 5, 4, 4) {
		t.Errorf("clamp changed a fitting rect: %+v", q)
	}
}

func TestRectClampShifts(t *testing.T) {
	outer := R(0, 0, 20, 20)
	q, adjusted := outer.Clamp(R(18, 18, 4, 4))
	if !adjusted {
		t.Fatal("expected adjustment")
	}
	if !outer.ContainsRect(q) {
		t.Errorf("clamped rect %+v not contained in %+v", q, outer)
	}
	if q.W != 4 || q.H != 4 {
		t.Errorf("clamp should preserve size when possible, got %+v", q)
	}
}

func TestRectClampShrinks(t *testing.T) {
	outer := R(0, 0, 10, 10)
	q, adjusted := outer.Clamp(R(2, 2, 30, 4))
	if !adjusted {
		t.Fatal("expected adjustment")
	}
	if !outer.ContainsRect(q) {
		t.Errorf("clamped rect %+v not contained in %+v", q, outer)
	}
}

func TestCircleBounds(t *testing.T) {
	b := Circle{Center: Pt(5, 5), Radius: 2}.Bounds()
	if b != R(3, 3, 4, 4) {
		t.Errorf("bounds = %+v, want {3 3 4 4}", b)
	}
}

func TestMidPoint(t *testing.T) {
	m := MidPoint(Pt(0, 0), Pt(10, 4))
	if m.X != 5 || m.Y != 2 {
		t.Errorf("midpoint = %+v, want (5, 2)", m)
	}
}

func TestPointDistance(t *testing.T) {
	d := Pt(0, 0).Distance(Pt(3, 4))
	if math.Abs(d-5) > 1e-12 {
		t.Errorf("distance = %v, want 5", d)
	}
}
