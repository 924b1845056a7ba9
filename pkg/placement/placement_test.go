package placement

import (
	"testing"

	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/philipparndt/goplan/pkg/plan"
	"github.com/philipparndt/goplan/pkg/snap"
	"github.com/philipparndt/goplan/pkg/units"
)

var testRoom = plan.RoomConfig{Width: 400, Height: 300}

func placedItem(t *testing.T, items []plan.Item, width, height float64) plan.Item {
	t.Helper()

	pos, ok := FindFreePosition(width, height, testRoom, items, plan.KindFurniture, nil)
	if !ok {
		t.Fatalf("FindFreePosition failed with %d items", len(items))
	}

	it := plan.NewItem(plan.KindFurniture, "Chair", width, height)
	it.X, it.Y = pos.X, pos.Y
	return it
}

func TestPlaceThreeChairsWithoutOverlap(t *testing.T) {
	var items []plan.Item
	for i := 0; i < 3; i++ {
		items = append(items, placedItem(t, items, 50, 50))
	}

	roomBounds := testRoom.Bounds()
	for i, a := range items {
		if !roomBounds.ContainsRect(a.VisualBounds()) {
			t.Errorf("item %d escapes the room: %v", i, a.VisualBounds())
		}
		for j, b := range items[i+1:] {
			if a.VisualBounds().Overlaps(b.VisualBounds()) {
				t.Errorf("items %d and %d overlap", i, i+1+j)
			}
		}
	}
}

func TestPlacementFailsWhenFloorIsFull(t *testing.T) {
	small := plan.RoomConfig{Width: 100, Height: 100}

	var items []plan.Item
	for i := 0; i < 4; i++ {
		pos, ok := FindFreePosition(50, 50, small, items, plan.KindFurniture, nil)
		if !ok {
			t.Fatalf("placement %d failed, floor not yet full", i)
		}
		it := plan.NewItem(plan.KindFurniture, "Chair", 50, 50)
		it.X, it.Y = pos.X, pos.Y
		items = append(items, it)
	}

	// Four 50x50 items tile the 100x100 floor completely.
	if _, ok := FindFreePosition(50, 50, small, items, plan.KindFurniture, nil); ok {
		t.Error("expected no free space for a fifth item")
	}
}

func TestPlacementIsDeterministic(t *testing.T) {
	items := []plan.Item{
		{ID: "a", Kind: plan.KindFurniture, X: 0, Y: 0, Width: 100, Height: 100},
	}

	p1, ok1 := FindFreePosition(60, 40, testRoom, items, plan.KindFurniture, nil)
	p2, ok2 := FindFreePosition(60, 40, testRoom, items, plan.KindFurniture, nil)

	if !ok1 || !ok2 || p1 != p2 {
		t.Errorf("placement not deterministic: %v/%v vs %v/%v", p1, ok1, p2, ok2)
	}
}

func TestPlacementTooLargeForRoom(t *testing.T) {
	if _, ok := FindFreePosition(500, 50, testRoom, nil, plan.KindFurniture, nil); ok {
		t.Error("expected failure for an item wider than the room")
	}
}

func TestPlacementAllowsTouchingEdges(t *testing.T) {
	items := []plan.Item{
		{ID: "a", Kind: plan.KindFurniture, X: 0, Y: 0, Width: 200, Height: 300},
	}

	// The remaining free strip is exactly 200 wide; a 200 wide item fits
	// flush against the existing one.
	pos, ok := FindFreePosition(200, 300, testRoom, items, plan.KindFurniture, nil)
	if !ok {
		t.Fatal("expected flush placement to succeed")
	}
	if pos != geometry.NewVector2(200, 0) {
		t.Errorf("expected (200, 0), got %v", pos)
	}
}

func TestPlacementRespectsRotatedItems(t *testing.T) {
	// A 300x40 sideboard rotated 90 degrees occupies a 40x300 column around
	// its center; placement must avoid the visual, not the stored, footprint.
	sideboard := plan.Item{ID: "s", Kind: plan.KindFurniture, X: 50, Y: 130, Width: 300, Height: 40, Rotation: plan.Rotate90}
	items := []plan.Item{sideboard}

	pos, ok := FindFreePosition(100, 100, testRoom, items, plan.KindFurniture, nil)
	if !ok {
		t.Fatal("expected placement to succeed")
	}

	candidate := geometry.NewRect(pos.X, pos.Y, 100, 100)
	if candidate.Overlaps(sideboard.VisualBounds()) {
		t.Errorf("candidate %v overlaps rotated item %v", candidate, sideboard.VisualBounds())
	}
}

func TestPlacementAvoidsBlockedZones(t *testing.T) {
	// An inner wall across the full width near the top cuts off the strip
	// above it.
	wall := plan.Item{ID: "w", Kind: plan.KindInnerWall, X: 0, Y: 60, Width: 400, Height: units.WallThicknessCm}
	items := []plan.Item{wall}

	pos, ok := FindFreePosition(80, 80, testRoom, items, plan.KindFurniture, nil)
	if !ok {
		t.Fatal("expected placement to succeed below the inner wall")
	}
	if pos.Y < wall.VisualBounds().Bottom() {
		t.Errorf("placement %v landed inside the blocked zone", pos)
	}
}

func TestWallPlacementOnPreferredWall(t *testing.T) {
	wall := plan.WallLeft
	pos, ok := FindFreePosition(100, units.WallThicknessCm, testRoom, nil, plan.KindWindow, &wall)
	if !ok {
		t.Fatal("expected wall placement to succeed")
	}

	it := plan.NewItem(plan.KindWindow, "Window", 100, units.WallThicknessCm)
	it.X, it.Y = pos.X, pos.Y
	it.Rotation = plan.Rotate90

	got, ok := snap.WallFor(it, testRoom)
	if !ok || got != plan.WallLeft {
		t.Errorf("expected item on left wall, got %v", got)
	}
}

func TestWallPlacementSkipsOccupiedSpans(t *testing.T) {
	// A window occupying [0, 150] on the top wall pushes the next one right.
	first := plan.NewItem(plan.KindWindow, "Window", 150, units.WallThicknessCm)
	x, y, rot := snap.PositionOnWall(plan.WallTop, 0, 150, units.WallThicknessCm, testRoom)
	first.X, first.Y, first.Rotation = x, y, rot

	wall := plan.WallTop
	pos, ok := FindFreePosition(100, units.WallThicknessCm, testRoom, []plan.Item{first}, plan.KindWindow, &wall)
	if !ok {
		t.Fatal("expected wall placement to succeed")
	}

	second := plan.NewItem(plan.KindWindow, "Window", 100, units.WallThicknessCm)
	second.X, second.Y = pos.X, pos.Y
	second.Rotation = plan.Rotate0

	start, end := snap.AlongSpan(second, plan.WallTop)
	if geometry.OverlapSpan(start, end, 0, 150) > 0 {
		t.Errorf("second window span [%v, %v] overlaps the first", start, end)
	}
}

func TestWallPlacementFailsOnFullWall(t *testing.T) {
	door := plan.NewItem(plan.KindDoor, "Door", 400, units.WallThicknessCm)
	x, y, rot := snap.PositionOnWall(plan.WallTop, 0, 400, units.WallThicknessCm, testRoom)
	door.X, door.Y, door.Rotation = x, y, rot

	wall := plan.WallTop
	if _, ok := FindFreePosition(100, units.WallThicknessCm, testRoom, []plan.Item{door}, plan.KindDoor, &wall); ok {
		t.Error("expected no free span on a fully occupied wall")
	}
}
