package core

// Rect is an axis-aligned room footprint. X2/Y2 are X1+w and Y1+h; the carved
// interior is [X1+1, X2] x [Y1+1, Y2].
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rect from its top-left corner and size
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Width returns the number of interior columns
func (r Rect) Width() int { return r.X2 - r.X1 }

// Height returns the number of interior rows
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// Intersects reports bounding-box overlap. Touching edges count as overlap,
// which keeps at least one wall between neighbouring rooms.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center returns the middle cell of the rect
func (r Rect) Center() Coordinate {
	return Coordinate{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains reports whether c lies in the carved interior
func (r Rect) Contains(c Coordinate) bool {
	return c.X > r.X1 && c.X <= r.X2 && c.Y > r.Y1 && c.Y <= r.Y2
}
