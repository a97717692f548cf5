package geo

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// R is a shorthand constructor for Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MaxX returns the right edge coordinate.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the top edge coordinate.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// MidBottom returns the midpoint of the bottom edge.
func (r Rect) MidBottom() Point {
	return Point{X: r.X + r.W/2, Y: r.Y}
}

// Area returns the rectangle area. Negative dimensions yield zero.
func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// IsEmpty reports whether the rectangle has no positive extent.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset returns the rectangle shrunk by d on every side. The result may
// be empty if d exceeds half the smaller dimension.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Contains reports whether p lies within the rectangle (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// ContainsRect reports whether q lies entirely within r, with a small
// tolerance for floating-point comparisons.
func (r Rect) ContainsRect(q Rect) bool {
	const eps = 1e-9
	return q.X >= r.X-eps && q.Y >= r.Y-eps &&
		q.MaxX() <= r.MaxX()+eps && q.MaxY() <= r.MaxY()+eps
}

// Intersects reports whether r and q overlap with positive area.
func (r Rect) Intersects(q Rect) bool {
	return r.X < q.MaxX() && q.X < r.MaxX() && r.Y < q.MaxY() && q.Y < r.MaxY()
}

// Clamp returns q translated and, if necessary, shrunk so that it fits
// inside r. The second return value reports whether any adjustment was
// made. Clamp never returns a rectangle larger than r.
func (r Rect) Clamp(q Rect) (Rect, bool) {
	adjusted := false

	if q.W > r.W {
		q.W = r.W
		adjusted = true
	}
	if q.H > r.H {
		q.H = r.H
		adjusted = true
	}
	if q.X < r.X {
		q.X = r.X
		adjusted = true
	}
	if q.Y < r.Y {
		q.Y = r.Y
		adjusted = true
	}
	if q.MaxX() > r.MaxX() {
		q.X = r.MaxX() - q.W
		adjusted = true
	}
	if q.MaxY() > r.MaxY() {
		q.Y = r.MaxY() - q.H
		adjusted = true
	}
	return q, adjusted
}

// Circle is a circle primitive.
type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// Bounds returns the axis-aligned bounding box of the circle.
func (c Circle) Bounds() Rect {
	return Rect{
		X: c.Center.X - c.Radius,
		Y: c.Center.Y - c.Radius,
		W: 2 * c.Radius,
		H: 2 * c.Radius,
	}
}
