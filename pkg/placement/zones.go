package placement

import (
	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/philipparndt/goplan/pkg/plan"
)

// spanEps tolerates float fuzz when deciding whether an inner wall reaches
// both room edges.
const spanEps = 1e-6

// BlockedZones returns the rectangular regions cut off by interior walls.
// An inner wall that spans the full room across one axis blocks the area
// between itself and the nearer room edge (the side away from the room
// center). The zones are excluded from free placement and rendered as
// blocked by the canvas layer.
func BlockedZones(room plan.RoomConfig, items []plan.Item) []geometry.Rect {
	var zones []geometry.Rect

	for _, it := range items {
		if it.Kind != plan.KindInnerWall {
			continue
		}

		b := it.VisualBounds()
		spansX := b.Left() <= spanEps && b.Right() >= room.Width-spanEps
		spansY := b.Top() <= spanEps && b.Bottom() >= room.Height-spanEps

		switch {
		case spansX:
			if b.Center().Y < room.Height/2 {
				if b.Top() > 0 {
					zones = append(zones, geometry.NewRect(0, 0, room.Width, b.Top()))
				}
			} else if b.Bottom() < room.Height {
				zones = append(zones, geometry.NewRect(0, b.Bottom(), room.Width, room.Height-b.Bottom()))
			}
		case spansY:
			if b.Center().X < room.Width/2 {
				if b.Left() > 0 {
					zones = append(zones, geometry.NewRect(0, 0, b.Left(), room.Height))
				}
			} else if b.Right() < room.Width {
				zones = append(zones, geometry.NewRect(b.Right(), 0, room.Width-b.Right(), room.Height))
			}
		}
	}

	return zones
}
