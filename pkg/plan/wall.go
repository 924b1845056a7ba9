package plan

import (
	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/philipparndt/goplan/pkg/units"
)

// Wall identifies one of the four room walls. The declaration order doubles
// as the tie-break priority when a point is equidistant to several walls.
type Wall int

// The four room walls
const (
	WallTop Wall = iota
	WallBottom
	WallLeft
	WallRight
)

// Walls lists all four walls in priority order
var Walls = []Wall{WallTop, WallBottom, WallLeft, WallRight}

// String returns the wall name
func (w Wall) String() string {
	switch w {
	case WallTop:
		return "top"
	case WallBottom:
		return "bottom"
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	}
	return "unknown"
}

// ParseWall converts a wall name to a Wall
func ParseWall(name string) (Wall, bool) {
	for _, w := range Walls {
		if w.String() == name {
			return w, true
		}
	}
	return 0, false
}

// Horizontal reports whether the wall runs along the X axis
func (w Wall) Horizontal() bool {
	return w == WallTop || w == WallBottom
}

// Length returns the wall length in centimeters for the given room
func (w Wall) Length(room RoomConfig) float64 {
	if w.Horizontal() {
		return room.Width
	}
	return room.Height
}

// Centerline returns the fixed cross-wall coordinate of the wall's center.
// The wall band lies just outside the room interior, so the centerline sits
// half a wall thickness beyond the interior edge.
func (w Wall) Centerline(room RoomConfig) float64 {
	half := units.WallThicknessCm / 2
	switch w {
	case WallTop:
		return -half
	case WallBottom:
		return room.Height + half
	case WallLeft:
		return -half
	default:
		return room.Width + half
	}
}

// Band returns the rectangular strip the wall occupies around the room interior
func (w Wall) Band(room RoomConfig) geometry.Rect {
	t := units.WallThicknessCm
	switch w {
	case WallTop:
		return geometry.NewRect(0, -t, room.Width, t)
	case WallBottom:
		return geometry.NewRect(0, room.Height, room.Width, t)
	case WallLeft:
		return geometry.NewRect(-t, 0, t, room.Height)
	default:
		return geometry.NewRect(room.Width, 0, t, room.Height)
	}
}

// DistanceTo returns the perpendicular distance from a point to the wall's
// interior edge
func (w Wall) DistanceTo(p geometry.Vector2, room RoomConfig) float64 {
	switch w {
	case WallTop:
		return abs(p.Y)
	case WallBottom:
		return abs(room.Height - p.Y)
	case WallLeft:
		return abs(p.X)
	default:
		return abs(room.Width - p.X)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
