// Package placement finds collision-free positions for new items. The search
// is deterministic: identical inputs always yield the identical position, and
// "no free space" is a normal result, not an error.
package placement

import (
	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/philipparndt/goplan/pkg/plan"
	"github.com/philipparndt/goplan/pkg/snap"
)

// Scan step sizes in centimeters. The coarse pass covers the common case
// cheaply; the fine pass only runs when the coarse grid found nothing.
const (
	coarseStep = 5.0
	fineStep   = 1.0
)

// FindFreePosition searches for a non-overlapping top-left position for an
// item of the given size. Doors and windows are searched along the walls
// (the preferred wall first when given); everything else is searched over
// the room interior in row-major order. The second return value is false
// when no free position exists.
func FindFreePosition(width, height float64, room plan.RoomConfig, items []plan.Item, kind plan.Kind, wall *plan.Wall) (geometry.Vector2, bool) {
	if kind == plan.KindDoor || kind == plan.KindWindow {
		return findWallPosition(width, height, room, items, wall)
	}
	return findFloorPosition(width, height, room, items)
}

// PlaceItem positions a new item in the room and returns it ready to add.
// For doors and windows the assigned wall also fixes the rotation. The
// second return value is false when no free position exists; the caller must
// reject the add in that case.
func PlaceItem(item plan.Item, room plan.RoomConfig, items []plan.Item, wall *plan.Wall) (plan.Item, bool) {
	if item.WallAnchored() {
		walls := plan.Walls
		if wall != nil {
			walls = []plan.Wall{*wall}
		}
		for _, w := range walls {
			pos, ok := findWallPosition(item.Width, item.Height, room, items, &w)
			if !ok {
				continue
			}
			_, _, rotation := snap.PositionOnWall(w, 0, item.Width, item.Height, room)
			item.X, item.Y = pos.X, pos.Y
			item.Rotation = rotation
			return item, true
		}
		return item, false
	}

	pos, ok := findFloorPosition(item.Width, item.Height, room, items)
	if !ok {
		return item, false
	}
	item.X, item.Y = pos.X, pos.Y
	return item, true
}

func findFloorPosition(width, height float64, room plan.RoomConfig, items []plan.Item) (geometry.Vector2, bool) {
	maxX := room.Width - width
	maxY := room.Height - height
	if maxX < 0 || maxY < 0 {
		return geometry.Vector2{}, false
	}

	obstacles := make([]geometry.Rect, 0, len(items))
	for _, it := range items {
		obstacles = append(obstacles, it.VisualBounds())
	}
	obstacles = append(obstacles, BlockedZones(room, items)...)

	for _, step := range []float64{coarseStep, fineStep} {
		for _, y := range scanPositions(maxY, step) {
			for _, x := range scanPositions(maxX, step) {
				candidate := geometry.NewRect(x, y, width, height)
				if !collides(candidate, obstacles) {
					return geometry.NewVector2(x, y), true
				}
			}
		}
	}

	return geometry.Vector2{}, false
}

func findWallPosition(width, height float64, room plan.RoomConfig, items []plan.Item, preferred *plan.Wall) (geometry.Vector2, bool) {
	walls := plan.Walls
	if preferred != nil {
		walls = []plan.Wall{*preferred}
	}

	for _, wall := range walls {
		maxAlong := wall.Length(room) - width
		if maxAlong < 0 {
			continue
		}

		spans := wallSpans(wall, items, room)
		for _, step := range []float64{coarseStep, fineStep} {
			for _, along := range scanPositions(maxAlong, step) {
				if !spanBlocked(along, along+width, spans) {
					x, y, _ := snap.PositionOnWall(wall, along, width, height, room)
					return geometry.NewVector2(x, y), true
				}
			}
		}
	}

	return geometry.Vector2{}, false
}

// wallSpans collects the along-wall spans of wall objects anchored to the
// given wall
func wallSpans(wall plan.Wall, items []plan.Item, room plan.RoomConfig) [][2]float64 {
	var spans [][2]float64
	for _, it := range items {
		w, ok := snap.WallFor(it, room)
		if !ok || w != wall {
			continue
		}
		start, end := snap.AlongSpan(it, wall)
		spans = append(spans, [2]float64{start, end})
	}
	return spans
}

func spanBlocked(start, end float64, spans [][2]float64) bool {
	for _, s := range spans {
		if geometry.OverlapSpan(start, end, s[0], s[1]) > 0 {
			return true
		}
	}
	return false
}

func collides(candidate geometry.Rect, obstacles []geometry.Rect) bool {
	for _, o := range obstacles {
		if candidate.Overlaps(o) {
			return true
		}
	}
	return false
}

// scanPositions returns the candidate coordinates 0, step, 2*step, ... and
// always includes the exact maximum so flush placement against the far edge
// is reachable regardless of step size.
func scanPositions(max, step float64) []float64 {
	if max < 0 {
		return nil
	}

	positions := make([]float64, 0, int(max/step)+2)
	for v := 0.0; v < max; v += step {
		positions = append(positions, v)
	}
	return append(positions, max)
}
