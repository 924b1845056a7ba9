package snap

import (
	"math"
	"testing"

	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/philipparndt/goplan/pkg/plan"
	"github.com/philipparndt/goplan/pkg/units"
)

func TestDragFurnitureCommit(t *testing.T) {
	chair := plan.NewItem(plan.KindFurniture, "Chair", 50, 50)

	session := BeginDrag(chair, testRoom)
	session.Move(geometry.NewVector2(100, 80))
	preview := session.Move(geometry.NewVector2(120.4, 90.7))

	if math.Abs(preview.X-95.4) > 1e-9 || math.Abs(preview.Y-65.7) > 1e-9 {
		t.Errorf("Move preview failed: got (%v, %v)", preview.X, preview.Y)
	}

	item, outcome := session.End()
	if outcome != DragCommitted {
		t.Fatalf("End failed: expected commit, got %v", outcome)
	}
	if item.X != 95 || item.Y != 66 {
		t.Errorf("commit rounding failed: got (%v, %v)", item.X, item.Y)
	}
	if session.Active() {
		t.Error("session must be inactive after End")
	}
}

func TestDragFurnitureCancelRestoresOriginal(t *testing.T) {
	chair := plan.NewItem(plan.KindFurniture, "Chair", 50, 50)
	chair.X, chair.Y = 10, 20

	session := BeginDrag(chair, testRoom)
	session.Move(geometry.NewVector2(300, 200))

	restored := session.Cancel()
	if restored != chair {
		t.Errorf("Cancel failed: expected %v, got %v", chair, restored)
	}
	if session.Active() {
		t.Error("session must be inactive after Cancel")
	}
}

func TestDragFurnitureOutsideDeletes(t *testing.T) {
	chair := plan.NewItem(plan.KindFurniture, "Chair", 50, 50)
	chair.X, chair.Y = 10, 20

	session := BeginDrag(chair, testRoom)
	session.Move(geometry.NewVector2(600, 500)) // fully outside

	_, outcome := session.End()
	if outcome != DragDeleted {
		t.Errorf("End failed: expected delete, got %v", outcome)
	}
}

func TestDragFurniturePartiallyOutsideClamps(t *testing.T) {
	chair := plan.NewItem(plan.KindFurniture, "Chair", 50, 50)

	session := BeginDrag(chair, testRoom)
	session.Move(geometry.NewVector2(390, 290)) // hangs over the bottom right corner

	item, outcome := session.End()
	if outcome != DragCommitted {
		t.Fatalf("End failed: expected commit, got %v", outcome)
	}

	bounds := item.VisualBounds()
	if !testRoom.Bounds().ContainsRect(bounds) {
		t.Errorf("clamp failed: bounds %v outside room", bounds)
	}
	if item.X != 350 || item.Y != 250 {
		t.Errorf("clamp failed: expected (350, 250), got (%v, %v)", item.X, item.Y)
	}
}

func TestDragInnerWallNeverDeletes(t *testing.T) {
	wall := plan.NewItem(plan.KindInnerWall, "Wall", 400, units.WallThicknessCm)

	session := BeginDrag(wall, testRoom)
	session.Move(geometry.NewVector2(1000, 1000))

	item, outcome := session.End()
	if outcome != DragCommitted {
		t.Fatalf("End failed: expected commit, got %v", outcome)
	}
	if !testRoom.Bounds().ContainsRect(item.VisualBounds()) {
		t.Errorf("inner wall must be clamped into the room, got %v", item.VisualBounds())
	}
}

func TestDragWindowLocksToWall(t *testing.T) {
	window := plan.NewItem(plan.KindWindow, "Window", 100, units.WallThicknessCm)

	session := BeginDrag(window, testRoom)
	// Wander through the room; the window must always sit on some wall.
	for _, p := range []geometry.Vector2{
		{X: 200, Y: 40},
		{X: 40, Y: 150},
		{X: 380, Y: 150},
		{X: 200, Y: 280},
	} {
		preview := session.Move(p)
		wall, ok := WallFor(preview, testRoom)
		if !ok {
			t.Fatalf("preview at %v has no wall", p)
		}
		start, end := AlongSpan(preview, wall)
		if start < -1e-9 || end > wall.Length(testRoom)+1e-9 {
			t.Errorf("span [%v, %v] escapes wall %v", start, end, wall)
		}
	}

	item, outcome := session.End()
	if outcome != DragCommitted {
		t.Fatalf("End failed: expected commit, got %v", outcome)
	}

	// Drag ended near the bottom wall; the span start commits on whole cm.
	wall, _ := WallFor(item, testRoom)
	if wall != plan.WallBottom {
		t.Errorf("expected bottom wall, got %v", wall)
	}
	start, _ := AlongSpan(item, wall)
	if start != math.Trunc(start) {
		t.Errorf("committed span start %v is not whole centimeters", start)
	}
}

func TestDragWindowCommitKeepsCrossWallLock(t *testing.T) {
	window := plan.NewItem(plan.KindWindow, "Window", 100, units.WallThicknessCm)

	session := BeginDrag(window, testRoom)
	session.Move(geometry.NewVector2(3.7, 151.3))

	item, outcome := session.End()
	if outcome != DragCommitted {
		t.Fatalf("End failed: expected commit, got %v", outcome)
	}

	bounds := item.VisualBounds()
	if math.Abs(bounds.Left()-(-units.WallThicknessCm)) > 1e-9 || math.Abs(bounds.Right()) > 1e-9 {
		t.Errorf("cross-wall lock lost on commit: x span [%v, %v]", bounds.Left(), bounds.Right())
	}
	if bounds.Top() != math.Trunc(bounds.Top()) {
		t.Errorf("along-wall commit %v is not whole centimeters", bounds.Top())
	}
}

func TestMoveAfterEndIsIgnored(t *testing.T) {
	chair := plan.NewItem(plan.KindFurniture, "Chair", 50, 50)

	session := BeginDrag(chair, testRoom)
	session.Move(geometry.NewVector2(100, 100))
	committed, _ := session.End()

	after := session.Move(geometry.NewVector2(200, 200))
	if after != committed {
		t.Error("Move after End must not change the item")
	}
}

func TestClampIntoRoomAfterRotation(t *testing.T) {
	desk := plan.NewItem(plan.KindFurniture, "Desk", 100, 40)
	desk.X, desk.Y = 300, 0
	desk.Rotation = plan.Rotate90

	// The swapped visual box spans y in [-30, 70], hanging above the top wall.
	clamped := ClampIntoRoom(desk, testRoom)
	if clamped.X != 300 || clamped.Y != 30 {
		t.Errorf("clamp failed: expected (300, 30), got (%v, %v)", clamped.X, clamped.Y)
	}
	if !testRoom.Bounds().ContainsRect(clamped.VisualBounds()) {
		t.Errorf("clamped bounds %v outside room", clamped.VisualBounds())
	}
}
