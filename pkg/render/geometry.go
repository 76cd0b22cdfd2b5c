// pkg/render/geometry.go
package render

// Point is a position in widget-local coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle with its origin in the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect mirrors image.Rect for float coordinates given origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MidX() float64 { return r.X + r.W/2 }
func (r Rect) MidY() float64 { return r.Y + r.H/2 }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Bounds returns the rectangle moved to the origin, the way a view's bounds
// relate to its frame.
func (r Rect) Bounds() Rect {
	return Rect{W: r.W, H: r.H}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
