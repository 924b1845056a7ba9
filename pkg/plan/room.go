package plan

import (
	"github.com/philipparndt/goplan/pkg/geometry"
)

// RoomType tags a room for furniture suggestions. It is display-only and
// never consulted by geometry code.
type RoomType string

// Known room types
const (
	RoomLiving  RoomType = "living"
	RoomBedroom RoomType = "bedroom"
	RoomKitchen RoomType = "kitchen"
	RoomBath    RoomType = "bath"
	RoomOffice  RoomType = "office"
)

// RoomConfig describes the rectangular room interior in centimeters.
// All item coordinates are relative to its top-left corner at (0, 0).
type RoomConfig struct {
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	RoomType RoomType `json:"roomType,omitempty"`
}

// Bounds returns the room interior as a rectangle with origin (0, 0)
func (r RoomConfig) Bounds() geometry.Rect {
	return geometry.NewRect(0, 0, r.Width, r.Height)
}

// Area returns the interior floor area in square centimeters
func (r RoomConfig) Area() float64 {
	return r.Width * r.Height
}
