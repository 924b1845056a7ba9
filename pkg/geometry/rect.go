package geometry

import "math"

// Rect represents an axis-aligned rectangle with its top-left corner and size.
// Y grows downward, matching the room coordinate system.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new rectangle from its top-left corner and size
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// NewRectFromCenter creates a new rectangle centered on the given point
func NewRectFromCenter(center Vector2, width, height float64) Rect {
	return Rect{
		X:      center.X - width/2,
		Y:      center.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// Left returns the left edge X coordinate
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the bottom edge Y coordinate
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle
func (r Rect) Center() Vector2 {
	return Vector2{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Overlaps reports whether two rectangles share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.Left() < other.Right() && other.Left() < r.Right() &&
		r.Top() < other.Bottom() && other.Top() < r.Bottom()
}

// Contains reports whether the point lies inside or on the boundary
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// ContainsRect reports whether other lies fully inside r (boundaries included)
func (r Rect) ContainsRect(other Rect) bool {
	return other.Left() >= r.Left() && other.Right() <= r.Right() &&
		other.Top() >= r.Top() && other.Bottom() <= r.Bottom()
}

// Union returns the minimal rectangle containing both rectangles
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.Left(), other.Left())
	minY := math.Min(r.Top(), other.Top())
	maxX := math.Max(r.Right(), other.Right())
	maxY := math.Max(r.Bottom(), other.Bottom())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Expand returns the rectangle grown by the given margin on all sides
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// Translate returns the rectangle moved by the given delta
func (r Rect) Translate(delta Vector2) Rect {
	return Rect{X: r.X + delta.X, Y: r.Y + delta.Y, Width: r.Width, Height: r.Height}
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// OverlapSpan returns the length of the overlap between the intervals
// [aStart, aEnd] and [bStart, bEnd], or 0 when they do not overlap.
func OverlapSpan(aStart, aEnd, bStart, bEnd float64) float64 {
	span := math.Min(aEnd, bEnd) - math.Max(aStart, bStart)
	if span < 0 {
		return 0
	}
	return span
}
