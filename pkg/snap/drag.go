package snap

import (
	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/philipparndt/goplan/pkg/plan"
	"github.com/philipparndt/goplan/pkg/units"
)

// DragOutcome is the terminal result of a drag gesture
type DragOutcome int

// Drag gesture outcomes
const (
	// DragCommitted means the item keeps its final dragged position
	DragCommitted DragOutcome = iota
	// DragDeleted means a furniture item was released fully outside the room
	DragDeleted
	// DragCancelled means the gesture was aborted and the original restored
	DragCancelled
)

// DragSession models one continuous drag gesture on an item. Move returns
// transient previews; nothing is committed until End, and Cancel restores
// the item the gesture started from.
type DragSession struct {
	original plan.Item
	current  plan.Item
	room     plan.RoomConfig
	active   bool
}

// BeginDrag starts a drag gesture for the given item
func BeginDrag(item plan.Item, room plan.RoomConfig) *DragSession {
	return &DragSession{
		original: item,
		current:  item,
		room:     room,
		active:   true,
	}
}

// Active reports whether the gesture is still in progress
func (s *DragSession) Active() bool {
	return s.active
}

// Item returns the current transient item state
func (s *DragSession) Item() plan.Item {
	return s.current
}

// Move advances the gesture to a new candidate center in room space and
// returns the preview item. Doors and windows lock onto the nearest wall;
// everything else follows the pointer freely.
func (s *DragSession) Move(center geometry.Vector2) plan.Item {
	if !s.active {
		return s.current
	}

	if s.current.WallAnchored() {
		wall := NearestWall(center, s.room)
		s.current = SnapToWall(s.current, wall, center, s.room)
		return s.current
	}

	s.current.X = center.X - s.current.Width/2
	s.current.Y = center.Y - s.current.Height/2
	return s.current
}

// Cancel aborts the gesture and returns the original, unmodified item
func (s *DragSession) Cancel() plan.Item {
	s.active = false
	s.current = s.original
	return s.original
}

// End terminates the gesture and returns the item to commit. Furniture
// released fully outside the room is reported as deleted; furniture and
// inner walls partially outside are pushed back in. Committed coordinates
// are rounded to whole centimeters.
func (s *DragSession) End() (plan.Item, DragOutcome) {
	if !s.active {
		return s.current, DragCancelled
	}
	s.active = false

	if s.current.WallAnchored() {
		s.current = roundOntoWall(s.current, s.room)
		return s.current, DragCommitted
	}

	bounds := s.current.VisualBounds()
	roomBounds := s.room.Bounds()

	if s.current.Kind == plan.KindFurniture && !bounds.Overlaps(roomBounds) {
		return s.original, DragDeleted
	}

	s.current = ClampIntoRoom(s.current, s.room)
	s.current.X = units.RoundCm(s.current.X)
	s.current.Y = units.RoundCm(s.current.Y)
	s.current = ClampIntoRoom(s.current, s.room)
	return s.current, DragCommitted
}

// ClampIntoRoom shifts an item so its visual bounds lie inside the room.
// Used on every commit path that may leave an item hanging over a wall,
// drag ends and rotations alike.
func ClampIntoRoom(item plan.Item, room plan.RoomConfig) plan.Item {
	b := item.VisualBounds()

	var dx, dy float64
	if b.Left() < 0 {
		dx = -b.Left()
	} else if b.Right() > room.Width {
		dx = room.Width - b.Right()
	}
	if b.Top() < 0 {
		dy = -b.Top()
	} else if b.Bottom() > room.Height {
		dy = room.Height - b.Bottom()
	}

	item.X += dx
	item.Y += dy
	return item
}
