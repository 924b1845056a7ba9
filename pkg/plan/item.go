package plan

import (
	"github.com/google/uuid"
	"github.com/philipparndt/goplan/pkg/geometry"
)

// Kind is the closed set of structurally distinct item kinds. Geometry code
// switches on it exhaustively; free-form naming lives in Item.Label.
type Kind string

// The four item kinds
const (
	KindFurniture Kind = "furniture"
	KindDoor      Kind = "door"
	KindWindow    Kind = "window"
	KindInnerWall Kind = "wall"
)

// Valid reports whether the kind is one of the four known kinds
func (k Kind) Valid() bool {
	switch k {
	case KindFurniture, KindDoor, KindWindow, KindInnerWall:
		return true
	}
	return false
}

// Rotation is an item rotation restricted to quarter turns
type Rotation int

// The four quarter-turn rotations
const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Normalize folds the rotation into [0, 360)
func (r Rotation) Normalize() Rotation {
	n := int(r) % 360
	if n < 0 {
		n += 360
	}
	return Rotation(n)
}

// Swapped reports whether the rotation swaps the footprint's width and height
func (r Rotation) Swapped() bool {
	return r.Normalize()%180 == 90
}

// Item is a piece of furniture, a door, a window or an interior wall segment.
// X and Y are the top-left corner of the unrotated footprint in centimeters;
// doors and windows straddle the wall band, so their coordinates may lie
// outside the room interior.
type Item struct {
	ID       string   `json:"id"`
	Kind     Kind     `json:"kind"`
	Label    string   `json:"label,omitempty"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Rotation Rotation `json:"rotation"`
	Color    string   `json:"color,omitempty"`
}

// NewItem creates an item of the given kind with a fresh ID
func NewItem(kind Kind, label string, width, height float64) Item {
	return Item{
		ID:     uuid.NewString(),
		Kind:   kind,
		Label:  label,
		Width:  width,
		Height: height,
	}
}

// Footprint returns the unrotated footprint rectangle
func (it Item) Footprint() geometry.Rect {
	return geometry.NewRect(it.X, it.Y, it.Width, it.Height)
}

// Center returns the footprint center, which is invariant under rotation
func (it Item) Center() geometry.Vector2 {
	return it.Footprint().Center()
}

// VisualBounds returns the axis-aligned bounding box of the footprint after
// applying the item's rotation around its center. This is the single bounding
// box used for all collision and measurement geometry.
func (it Item) VisualBounds() geometry.Rect {
	fp := it.Footprint()
	if !it.Rotation.Swapped() {
		return fp
	}
	return geometry.NewRectFromCenter(fp.Center(), it.Height, it.Width)
}

// WallAnchored reports whether the item is constrained to a room wall
func (it Item) WallAnchored() bool {
	return it.Kind == KindDoor || it.Kind == KindWindow
}
