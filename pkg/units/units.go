// Package units defines the conversion between room-space centimeters and
// screen pixels. Every cm/px conversion in the project goes through here.
package units

import "math"

const (
	// PixelsPerCm is the base conversion factor at scale 1.0
	PixelsPerCm = 2.0

	// WallThicknessPx is the drawn thickness of the room's outer walls at scale 1.0
	WallThicknessPx = 20.0

	// WallThicknessCm is the wall thickness in room-space centimeters
	WallThicknessCm = WallThicknessPx / PixelsPerCm
)

// ToPixels converts room-space centimeters to screen pixels at scale 1.0
func ToPixels(cm float64) float64 {
	return cm * PixelsPerCm
}

// ToCm converts screen pixels at scale 1.0 to room-space centimeters
func ToCm(px float64) float64 {
	return px / PixelsPerCm
}

// RoundCm rounds a coordinate to whole centimeters. Conversions never round;
// callers round only when committing a value to the item model.
func RoundCm(cm float64) float64 {
	return math.Round(cm)
}
