// Package snap locks doors and windows onto room walls and drives drag
// gestures. All functions are pure: they take the current state and return
// the next one, nothing is mutated in place.
package snap

import (
	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/philipparndt/goplan/pkg/plan"
	"github.com/philipparndt/goplan/pkg/units"
)

// NearestWall returns the room wall with the smallest perpendicular distance
// to the given point. Ties resolve in top, bottom, left, right order.
func NearestWall(center geometry.Vector2, room plan.RoomConfig) plan.Wall {
	nearest := plan.WallTop
	best := plan.WallTop.DistanceTo(center, room)

	for _, w := range plan.Walls[1:] {
		if d := w.DistanceTo(center, room); d < best {
			nearest = w
			best = d
		}
	}
	return nearest
}

// PositionOnWall returns the stored top-left position and rotation for a
// wall object of the given size whose along-wall span starts at along.
// The footprint is centered on the wall centerline; width is always the
// length along the wall, height the cross-wall thickness.
func PositionOnWall(wall plan.Wall, along, width, height float64, room plan.RoomConfig) (x, y float64, rotation plan.Rotation) {
	cross := wall.Centerline(room)

	if wall.Horizontal() {
		return along, cross - height/2, plan.Rotate0
	}

	// Vertical walls store the unrotated footprint; the 90 degree rotation
	// swaps it around the center onto the wall.
	center := geometry.NewVector2(cross, along+width/2)
	return center.X - width/2, center.Y - height/2, plan.Rotate90
}

// WallFor determines which wall a door or window is currently anchored to,
// based on its visual bounding box.
func WallFor(item plan.Item, room plan.RoomConfig) (plan.Wall, bool) {
	if !item.WallAnchored() {
		return 0, false
	}
	return NearestWall(item.Center(), room), true
}

// AlongSpan returns the start and end of the item's span along the given wall
func AlongSpan(item plan.Item, wall plan.Wall) (start, end float64) {
	b := item.VisualBounds()
	if wall.Horizontal() {
		return b.Left(), b.Right()
	}
	return b.Top(), b.Bottom()
}

// SnapToWall locks a door or window onto the given wall for a candidate
// center position. The cross-wall coordinate is forced onto the wall
// centerline; the along-wall coordinate follows the candidate but is clamped
// so the full item length stays within the wall. Door swing semantics
// (the 180 degree variants) survive the axis change.
func SnapToWall(item plan.Item, wall plan.Wall, center geometry.Vector2, room plan.RoomConfig) plan.Item {
	along := center.Y
	if wall.Horizontal() {
		along = center.X
	}
	along -= item.Width / 2
	along = clampAlong(along, item.Width, wall.Length(room))

	x, y, rotation := PositionOnWall(wall, along, item.Width, item.Height, room)
	if item.Kind == plan.KindDoor && item.Rotation.Normalize() >= plan.Rotate180 {
		rotation = (rotation + plan.Rotate180).Normalize()
	}

	item.X = x
	item.Y = y
	item.Rotation = rotation
	return item
}

// MoveTo moves an item to a new stored top-left position. Wall-anchored
// items are re-snapped onto the wall they are currently on, so only the
// along-wall component of the move survives and the cross-wall lock holds.
func MoveTo(item plan.Item, pos geometry.Vector2, room plan.RoomConfig) plan.Item {
	wall, anchored := WallFor(item, room)

	item.X = pos.X
	item.Y = pos.Y
	if anchored {
		return SnapToWall(item, wall, item.Center(), room)
	}
	return item
}

func clampAlong(along, length, wallLength float64) float64 {
	max := wallLength - length
	if max < 0 {
		// Item longer than the wall: pin it to the wall start.
		return 0
	}
	if along < 0 {
		return 0
	}
	if along > max {
		return max
	}
	return along
}

// roundOntoWall re-derives a wall object's position with its along-wall span
// start rounded to whole centimeters, keeping the cross-wall lock exact.
func roundOntoWall(item plan.Item, room plan.RoomConfig) plan.Item {
	wall, ok := WallFor(item, room)
	if !ok {
		return item
	}

	start, _ := AlongSpan(item, wall)
	along := clampAlong(units.RoundCm(start), item.Width, wall.Length(room))
	x, y, rotation := PositionOnWall(wall, along, item.Width, item.Height, room)
	if item.Kind == plan.KindDoor && item.Rotation.Normalize() >= plan.Rotate180 {
		rotation = (rotation + plan.Rotate180).Normalize()
	}

	item.X = x
	item.Y = y
	item.Rotation = rotation
	return item
}
