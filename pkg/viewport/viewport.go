// Package viewport owns the zoom level and pan offset of the plan view and
// maps room-space centimeters to screen pixels. All operations clamp their
// inputs instead of failing.
package viewport

import (
	"math"

	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/philipparndt/goplan/pkg/plan"
	"github.com/philipparndt/goplan/pkg/units"
)

const (
	// ZoomMin and ZoomMax bound the user zoom multiplier
	ZoomMin = 0.1
	ZoomMax = 5.0

	// ZoomStep is the multiplicative step applied per zoom tick
	ZoomStep = 1.1

	// ElasticMargin is the pan overshoot allowed beyond the content's
	// natural resting bounds, in screen pixels
	ElasticMargin = 100.0

	// ScreenPadding is the minimum margin kept between content and the
	// viewport edges at fit-to-view, in screen pixels
	ScreenPadding = 40.0

	// ContentBufferCm pads the room extent for protruding elements such as
	// door swing arcs and outside dimension labels
	ContentBufferCm = 60.0
)

// Controller holds the viewport state. UserZoom stays within
// [ZoomMin, ZoomMax]; the effective scale is the fit-to-content base scale
// multiplied by the user zoom.
type Controller struct {
	// Viewport size in screen pixels
	Width, Height float64

	// UserZoom is the user-controlled zoom multiplier, 1.0 at fit-to-view
	UserZoom float64

	// Pan is the pan offset in screen pixels, (0, 0) when centered
	Pan geometry.Vector2

	content geometry.Rect
}

// New creates a controller at fit-to-view for the given room
func New(viewportWidth, viewportHeight float64, room plan.RoomConfig) *Controller {
	c := &Controller{
		Width:    viewportWidth,
		Height:   viewportHeight,
		UserZoom: 1.0,
	}
	c.SetRoom(room)
	return c
}

// ContentBounds returns the room extent plus the fixed buffer for elements
// drawn outside the walls
func ContentBounds(room plan.RoomConfig) geometry.Rect {
	return room.Bounds().Expand(units.WallThicknessCm + ContentBufferCm)
}

// SetRoom updates the content bounds for a new room configuration
func (c *Controller) SetRoom(room plan.RoomConfig) {
	c.content = ContentBounds(room)
}

// Resize updates the viewport size, keeping zoom and pan
func (c *Controller) Resize(width, height float64) {
	c.Width = width
	c.Height = height
	c.clampPan()
}

// BaseScale returns the largest scale in pixels per centimeter at which the
// content fits the padded viewport on both axes
func (c *Controller) BaseScale() float64 {
	availW := c.Width - 2*ScreenPadding
	availH := c.Height - 2*ScreenPadding
	if availW <= 0 || availH <= 0 || c.content.Width <= 0 || c.content.Height <= 0 {
		return 1
	}
	return math.Min(availW/c.content.Width, availH/c.content.Height)
}

// EffectiveScale returns the base scale multiplied by the user zoom
func (c *Controller) EffectiveScale() float64 {
	return c.BaseScale() * c.UserZoom
}

// WorldToScreen maps a room-space point in centimeters to screen pixels
func (c *Controller) WorldToScreen(p geometry.Vector2) geometry.Vector2 {
	s := c.EffectiveScale()
	ox, oy := c.offset(s)
	return geometry.NewVector2(p.X*s+ox, p.Y*s+oy)
}

// ScreenToWorld maps a screen point in pixels to room-space centimeters
func (c *Controller) ScreenToWorld(p geometry.Vector2) geometry.Vector2 {
	s := c.EffectiveScale()
	ox, oy := c.offset(s)
	return geometry.NewVector2((p.X-ox)/s, (p.Y-oy)/s)
}

// offset returns the total screen offset: content centered in the viewport
// plus the pan offset.
func (c *Controller) offset(scale float64) (float64, float64) {
	ox := (c.Width-c.content.Width*scale)/2 - c.content.X*scale + c.Pan.X
	oy := (c.Height-c.content.Height*scale)/2 - c.content.Y*scale + c.Pan.Y
	return ox, oy
}

// ZoomAt applies one zoom step anchored at the given screen point: the
// room-space point under the cursor stays under the cursor. direction > 0
// zooms in, direction < 0 zooms out.
func (c *Controller) ZoomAt(screen geometry.Vector2, direction int) {
	if direction == 0 {
		return
	}

	factor := ZoomStep
	if direction < 0 {
		factor = 1 / ZoomStep
	}

	newZoom := clamp(c.UserZoom*factor, ZoomMin, ZoomMax)
	if newZoom == c.UserZoom {
		return
	}

	world := c.ScreenToWorld(screen)
	c.UserZoom = newZoom

	// Solve for the pan that keeps world under the cursor at the new scale.
	after := c.WorldToScreen(world)
	c.Pan = c.Pan.Add(screen.Sub(after))
	c.clampPan()
}

// ZoomAtViewportCenter applies one zoom step anchored at the viewport center,
// used by the discrete zoom buttons
func (c *Controller) ZoomAtViewportCenter(direction int) {
	c.ZoomAt(geometry.NewVector2(c.Width/2, c.Height/2), direction)
}

// PanBy moves the pan offset by the given screen delta, with elastic
// clamping on each axis
func (c *Controller) PanBy(delta geometry.Vector2) {
	c.Pan = c.Pan.Add(delta)
	c.clampPan()
}

// ResetToFit restores the default fit-to-view state
func (c *Controller) ResetToFit() {
	c.UserZoom = 1.0
	c.Pan = geometry.Vector2{}
}

// clampPan keeps the pan offset within the content's natural resting bounds
// plus the elastic margin. Overshoot within the margin is allowed for the
// rubber-band feel; beyond it the offset clamps hard.
func (c *Controller) clampPan() {
	s := c.EffectiveScale()

	overX := math.Max(0, (c.content.Width*s-c.Width)/2)
	overY := math.Max(0, (c.content.Height*s-c.Height)/2)

	c.Pan.X = clamp(c.Pan.X, -(overX + ElasticMargin), overX+ElasticMargin)
	c.Pan.Y = clamp(c.Pan.Y, -(overY + ElasticMargin), overY+ElasticMargin)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
