// Package analysis computes obstacle distances for plan items: for a focal
// item it finds the nearest obstacle in each cardinal direction and can solve
// the inverse problem of repositioning the item for a desired distance.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/philipparndt/goplan/pkg/plan"
	"github.com/philipparndt/goplan/pkg/units"
)

// Direction is one of the four cardinal measurement directions
type Direction int

// The four measurement directions
const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists all four directions in reporting order
var Directions = []Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "unknown"
}

// Measurement is the gap between a focal item's edge and the nearest
// obstacle edge in one direction. ObstacleID is empty when the room wall is
// the obstacle.
type Measurement struct {
	Direction    Direction
	Distance     float64
	ItemEdge     float64
	ObstacleEdge float64
	ObstacleID   string
}

// Format returns the measurement as a human-readable string
func (m Measurement) Format() string {
	obstacle := "wall"
	if m.ObstacleID != "" {
		obstacle = "item " + m.ObstacleID
	}
	return fmt.Sprintf("%-5s %8.1f cm (to %s)", m.Direction, m.Distance, obstacle)
}

// Distances computes the nearest-obstacle measurement in every direction.
// Obstacles are the visual bounding boxes of the other items that overlap
// the focal extent on the perpendicular axis; the room walls are the
// fallback obstacle on each side.
func Distances(focal plan.Item, others []plan.Item, room plan.RoomConfig) [4]Measurement {
	var result [4]Measurement
	for i, d := range Directions {
		result[i] = measure(d, focal, others, room)
	}
	return result
}

func measure(dir Direction, focal plan.Item, others []plan.Item, room plan.RoomConfig) Measurement {
	fb := focal.VisualBounds()

	m := Measurement{Direction: dir}
	switch dir {
	case DirLeft:
		m.ItemEdge = fb.Left()
		m.ObstacleEdge = 0
	case DirRight:
		m.ItemEdge = fb.Right()
		m.ObstacleEdge = room.Width
	case DirUp:
		m.ItemEdge = fb.Top()
		m.ObstacleEdge = 0
	case DirDown:
		m.ItemEdge = fb.Bottom()
		m.ObstacleEdge = room.Height
	}

	for _, other := range others {
		if other.ID == focal.ID {
			continue
		}
		ob := other.VisualBounds()
		if !perpendicularOverlap(dir, fb, ob) {
			continue
		}

		switch dir {
		case DirLeft:
			if ob.Right() <= m.ItemEdge && ob.Right() > m.ObstacleEdge {
				m.ObstacleEdge = ob.Right()
				m.ObstacleID = other.ID
			}
		case DirRight:
			if ob.Left() >= m.ItemEdge && ob.Left() < m.ObstacleEdge {
				m.ObstacleEdge = ob.Left()
				m.ObstacleID = other.ID
			}
		case DirUp:
			if ob.Bottom() <= m.ItemEdge && ob.Bottom() > m.ObstacleEdge {
				m.ObstacleEdge = ob.Bottom()
				m.ObstacleID = other.ID
			}
		case DirDown:
			if ob.Top() >= m.ItemEdge && ob.Top() < m.ObstacleEdge {
				m.ObstacleEdge = ob.Top()
				m.ObstacleID = other.ID
			}
		}
	}

	m.Distance = math.Abs(m.ItemEdge - m.ObstacleEdge)
	return m
}

// perpendicularOverlap reports whether the obstacle box shares extent with
// the focal box on the axis perpendicular to the measurement direction
func perpendicularOverlap(dir Direction, focal, obstacle geometry.Rect) bool {
	if dir == DirLeft || dir == DirRight {
		return geometry.OverlapSpan(focal.Top(), focal.Bottom(), obstacle.Top(), obstacle.Bottom()) > 0
	}
	return geometry.OverlapSpan(focal.Left(), focal.Right(), obstacle.Left(), obstacle.Right()) > 0
}

// PositionForDistance solves the focal item's new top-left position so that
// the gap to the current nearest obstacle in the given direction equals
// target. The perpendicular axis is left unchanged and the result is rounded
// to whole centimeters. Non-finite or negative targets are rejected with
// false and no position.
func PositionForDistance(focal plan.Item, others []plan.Item, room plan.RoomConfig, dir Direction, target float64) (geometry.Vector2, bool) {
	if math.IsNaN(target) || math.IsInf(target, 0) || target < 0 {
		return geometry.Vector2{}, false
	}

	m := measure(dir, focal, others, room)
	fb := focal.VisualBounds()

	x, y := focal.X, focal.Y
	switch dir {
	case DirLeft:
		x += (m.ObstacleEdge + target) - fb.Left()
	case DirRight:
		x += (m.ObstacleEdge - target) - fb.Right()
	case DirUp:
		y += (m.ObstacleEdge + target) - fb.Top()
	case DirDown:
		y += (m.ObstacleEdge - target) - fb.Bottom()
	}

	return geometry.NewVector2(units.RoundCm(x), units.RoundCm(y)), true
}
