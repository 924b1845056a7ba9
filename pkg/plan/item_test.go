package plan

import (
	"testing"

	"github.com/philipparndt/goplan/pkg/geometry"
)

func TestVisualBoundsUnrotated(t *testing.T) {
	it := Item{Kind: KindFurniture, X: 10, Y: 20, Width: 100, Height: 50}

	bounds := it.VisualBounds()
	expected := geometry.NewRect(10, 20, 100, 50)
	if bounds != expected {
		t.Errorf("VisualBounds failed: expected %v, got %v", expected, bounds)
	}
}

func TestVisualBoundsRotated90(t *testing.T) {
	it := Item{Kind: KindFurniture, X: 10, Y: 20, Width: 100, Height: 50, Rotation: Rotate90}

	// The footprint swaps width and height around its center (60, 45).
	bounds := it.VisualBounds()
	expected := geometry.NewRect(35, -5, 50, 100)
	if bounds != expected {
		t.Errorf("VisualBounds failed: expected %v, got %v", expected, bounds)
	}

	if bounds.Center() != it.Center() {
		t.Errorf("rotation must preserve the center: %v vs %v", bounds.Center(), it.Center())
	}
}

func TestVisualBoundsRotated180(t *testing.T) {
	it := Item{Kind: KindDoor, X: 10, Y: 20, Width: 100, Height: 10, Rotation: Rotate180}

	// 180 degrees leaves the axis-aligned bounding box unchanged.
	if it.VisualBounds() != it.Footprint() {
		t.Errorf("VisualBounds failed: expected %v, got %v", it.Footprint(), it.VisualBounds())
	}
}

func TestVisualBoundsRotated270(t *testing.T) {
	it := Item{Kind: KindFurniture, X: 0, Y: 0, Width: 80, Height: 40, Rotation: Rotate270}

	bounds := it.VisualBounds()
	if bounds.Width != 40 || bounds.Height != 80 {
		t.Errorf("VisualBounds failed: expected swapped 40x80, got %gx%g", bounds.Width, bounds.Height)
	}
}

func TestRotationNormalize(t *testing.T) {
	cases := []struct {
		in       Rotation
		expected Rotation
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
	}

	for _, c := range cases {
		if got := c.in.Normalize(); got != c.expected {
			t.Errorf("Normalize(%d) failed: expected %d, got %d", c.in, c.expected, got)
		}
	}
}

func TestRotationSwapped(t *testing.T) {
	if Rotate0.Swapped() || Rotate180.Swapped() {
		t.Error("Swapped failed: 0 and 180 must not swap")
	}
	if !Rotate90.Swapped() || !Rotate270.Swapped() {
		t.Error("Swapped failed: 90 and 270 must swap")
	}
}

func TestKindValid(t *testing.T) {
	for _, k := range []Kind{KindFurniture, KindDoor, KindWindow, KindInnerWall} {
		if !k.Valid() {
			t.Errorf("Valid failed for %q", k)
		}
	}
	if Kind("sofa").Valid() {
		t.Error("Valid failed: free-form labels are not kinds")
	}
}

func TestNewItemAssignsID(t *testing.T) {
	a := NewItem(KindFurniture, "Chair", 45, 45)
	b := NewItem(KindFurniture, "Chair", 45, 45)

	if a.ID == "" || b.ID == "" {
		t.Error("NewItem failed: missing ID")
	}
	if a.ID == b.ID {
		t.Error("NewItem failed: IDs must be unique")
	}
}

func TestWallAnchored(t *testing.T) {
	if !(Item{Kind: KindDoor}).WallAnchored() || !(Item{Kind: KindWindow}).WallAnchored() {
		t.Error("WallAnchored failed: doors and windows are wall anchored")
	}
	if (Item{Kind: KindFurniture}).WallAnchored() || (Item{Kind: KindInnerWall}).WallAnchored() {
		t.Error("WallAnchored failed: furniture and inner walls are not")
	}
}
