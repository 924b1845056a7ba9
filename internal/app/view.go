package app

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goplan/pkg/analysis"
	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/philipparndt/goplan/pkg/placement"
	"github.com/philipparndt/goplan/pkg/plan"
	"github.com/philipparndt/goplan/pkg/snap"
	"github.com/philipparndt/goplan/pkg/viewport"
)

// planView renders the room plan and handles all pointer interaction:
// dragging items, panning, cursor-anchored zooming and measurement taps.
type planView struct {
	widget.BaseWidget

	plan     *plan.Plan
	viewport *viewport.Controller

	selectedID   string
	drag         *snap.DragSession
	dragIsPan    bool
	dragStarted  bool
	measureMode  bool
	measureStart *geometry.Vector2

	onSelect func(id string)
	onChange func()

	objects []fyne.CanvasObject
}

func newPlanView(p *plan.Plan, onSelect func(id string), onChange func()) *planView {
	v := &planView{
		plan:     p,
		viewport: viewport.New(800, 600, p.Room),
		onSelect: onSelect,
		onChange: onChange,
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetPlan replaces the displayed plan, keeping zoom and pan when the room
// is unchanged
func (v *planView) SetPlan(p *plan.Plan) {
	if p.Room != v.plan.Room {
		v.viewport.SetRoom(p.Room)
		v.viewport.ResetToFit()
	}
	v.plan = p
	v.cancelGesture()
	if _, ok := p.ItemByID(v.selectedID); !ok {
		v.selectedID = ""
	}
	v.Refresh()
}

func (v *planView) Selected() (plan.Item, bool) {
	return v.plan.ItemByID(v.selectedID)
}

func (v *planView) setSelected(id string) {
	v.selectedID = id
	if v.onSelect != nil {
		v.onSelect(id)
	}
	v.Refresh()
}

// SetMeasureMode toggles the manual measurement tool. Entering the mode
// drops any half-finished measurement.
func (v *planView) SetMeasureMode(on bool) {
	v.measureMode = on
	v.measureStart = nil
	v.Refresh()
}

// cancelGesture aborts an in-progress drag without committing anything
func (v *planView) cancelGesture() {
	if v.drag != nil && v.drag.Active() {
		restored := v.drag.Cancel()
		v.plan.ReplaceItem(restored)
	}
	v.drag = nil
	v.dragStarted = false
	v.measureStart = nil
	v.Refresh()
}

func (v *planView) itemAt(world geometry.Vector2) (plan.Item, bool) {
	// Walk back to front so the most recently added item wins
	for i := len(v.plan.Items) - 1; i >= 0; i-- {
		if v.plan.Items[i].VisualBounds().Contains(world) {
			return v.plan.Items[i], true
		}
	}
	return plan.Item{}, false
}

// Dragged moves either the grabbed item or, when the gesture started on
// empty floor, the viewport pan
func (v *planView) Dragged(event *fyne.DragEvent) {
	pos := geometry.NewVector2(float64(event.Position.X), float64(event.Position.Y))

	if !v.dragStarted {
		v.dragStarted = true
		start := pos.Sub(geometry.NewVector2(float64(event.Dragged.DX), float64(event.Dragged.DY)))
		if it, ok := v.itemAt(v.viewport.ScreenToWorld(start)); ok && !v.measureMode {
			v.drag = snap.BeginDrag(it, v.plan.Room)
			v.setSelected(it.ID)
			v.dragIsPan = false
		} else {
			v.dragIsPan = true
		}
	}

	if v.dragIsPan {
		v.viewport.PanBy(geometry.NewVector2(float64(event.Dragged.DX), float64(event.Dragged.DY)))
		v.Refresh()
		return
	}

	if v.drag != nil && v.drag.Active() {
		preview := v.drag.Move(v.viewport.ScreenToWorld(pos))
		v.plan.ReplaceItem(preview)
		v.Refresh()
	}
}

// DragEnd commits the gesture: wall items land rounded on their wall,
// furniture released outside the room is deleted
func (v *planView) DragEnd() {
	v.dragStarted = false

	if v.dragIsPan || v.drag == nil {
		return
	}

	item, outcome := v.drag.End()
	v.drag = nil

	switch outcome {
	case snap.DragDeleted:
		v.plan.RemoveItem(item.ID)
		v.setSelected("")
	case snap.DragCommitted:
		v.plan.ReplaceItem(item)
		v.setSelected(item.ID)
	case snap.DragCancelled:
		v.plan.ReplaceItem(item)
	}

	if v.onChange != nil {
		v.onChange()
	}
	v.Refresh()
}

// Tapped selects the item under the cursor, or places measurement
// endpoints when the measurement tool is active
func (v *planView) Tapped(event *fyne.PointEvent) {
	world := v.viewport.ScreenToWorld(geometry.NewVector2(float64(event.Position.X), float64(event.Position.Y)))

	if v.measureMode {
		if v.measureStart == nil {
			v.measureStart = &world
		} else {
			v.plan.AddMeasurement(plan.NewManualMeasurement(*v.measureStart, world))
			v.measureStart = nil
			if v.onChange != nil {
				v.onChange()
			}
		}
		v.Refresh()
		return
	}

	if it, ok := v.itemAt(world); ok {
		v.setSelected(it.ID)
	} else {
		v.setSelected("")
	}
}

// Scrolled zooms around the cursor position
func (v *planView) Scrolled(event *fyne.ScrollEvent) {
	direction := 1
	if event.Scrolled.DY < 0 {
		direction = -1
	}
	v.viewport.ZoomAt(geometry.NewVector2(float64(event.Position.X), float64(event.Position.Y)), direction)
	v.Refresh()
}

func (v *planView) CreateRenderer() fyne.WidgetRenderer {
	return &planViewRenderer{view: v}
}

// planViewRenderer implements fyne.WidgetRenderer by rebuilding the canvas
// object list from the plan on every refresh
type planViewRenderer struct {
	view *planView
}

func (r *planViewRenderer) Layout(size fyne.Size) {
	r.view.viewport.Resize(float64(size.Width), float64(size.Height))
	r.Refresh()
}

func (r *planViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *planViewRenderer) Refresh() {
	r.view.objects = r.rebuild()
	canvas.Refresh(r.view)
}

func (r *planViewRenderer) Objects() []fyne.CanvasObject {
	return r.view.objects
}

func (r *planViewRenderer) Destroy() {}

// rebuild produces the draw list back to front: floor, blocked zones, wall
// bands, items, selection markers, measurements
func (r *planViewRenderer) rebuild() []fyne.CanvasObject {
	v := r.view
	var objects []fyne.CanvasObject

	background := canvas.NewRectangle(colorBackground)
	background.Resize(fyne.NewSize(float32(v.viewport.Width), float32(v.viewport.Height)))
	objects = append(objects, background)

	objects = append(objects, r.worldRect(v.plan.Room.Bounds(), colorFloor, nil))

	for _, zone := range placement.BlockedZones(v.plan.Room, v.plan.Items) {
		objects = append(objects, r.worldRect(zone, colorBlockedZone, nil))
	}

	for _, wall := range plan.Walls {
		objects = append(objects, r.worldRect(wall.Band(v.plan.Room), colorWall, nil))
	}

	for _, it := range v.plan.Items {
		objects = append(objects, r.itemObjects(it)...)
	}

	if focal, ok := v.Selected(); ok {
		objects = append(objects, r.distanceObjects(focal)...)
	}

	for _, m := range v.plan.Measurements {
		objects = append(objects, r.measurementObjects(m.Start, m.End, m.Length())...)
	}
	if v.measureStart != nil {
		marker := canvas.NewCircle(colorMeasure)
		r.placeAt(marker, *v.measureStart, 8)
		objects = append(objects, marker)
	}

	return objects
}

func (r *planViewRenderer) itemObjects(it plan.Item) []fyne.CanvasObject {
	bounds := it.VisualBounds()

	fill := itemColor(it)
	var stroke color.Color
	if it.ID == r.view.selectedID {
		stroke = colorSelection
	}
	rect := r.worldRect(bounds, fill, stroke)
	objects := []fyne.CanvasObject{rect}

	if it.Kind == plan.KindDoor {
		objects = append(objects, r.doorSwing(it)...)
	}

	if it.Label != "" {
		label := canvas.NewText(it.Label, colorLabel)
		label.TextSize = 11
		center := r.view.viewport.WorldToScreen(bounds.Center())
		label.Move(fyne.NewPos(float32(center.X)-label.MinSize().Width/2, float32(center.Y)-label.MinSize().Height/2))
		objects = append(objects, label)
	}

	return objects
}

// doorSwing draws the quarter-circle swing as a polyline from the hinge.
// The hinge sits at the start of the along-wall span; rotations of 180 and
// above mirror the swing to the other side of the wall band.
func (r *planViewRenderer) doorSwing(it plan.Item) []fyne.CanvasObject {
	wall, ok := snap.WallFor(it, r.view.plan.Room)
	if !ok {
		return nil
	}

	start, end := snap.AlongSpan(it, wall)
	width := end - start
	band := wall.Band(r.view.plan.Room)

	// Swing into the room by default; rotations of 180 and above mirror it
	// to the outside.
	mirrored := it.Rotation.Normalize() >= plan.Rotate180

	var hinge, tip, farEnd geometry.Vector2
	if wall.Horizontal() {
		edge := band.Bottom()
		into := 1.0
		if wall == plan.WallBottom {
			edge = band.Top()
			into = -1
		}
		if mirrored {
			into = -into
		}
		hinge = geometry.NewVector2(start, edge)
		tip = geometry.NewVector2(start, edge+into*width)
		farEnd = geometry.NewVector2(end, edge)
	} else {
		edge := band.Right()
		into := 1.0
		if wall == plan.WallRight {
			edge = band.Left()
			into = -1
		}
		if mirrored {
			into = -into
		}
		hinge = geometry.NewVector2(edge, start)
		tip = geometry.NewVector2(edge+into*width, start)
		farEnd = geometry.NewVector2(edge, end)
	}

	// Leaf plus a chord standing in for the swing arc
	leaf := r.worldLine(hinge, tip, colorDoorSwing)
	chord := r.worldLine(tip, farEnd, colorDoorSwing)
	return []fyne.CanvasObject{leaf, chord}
}

// distanceObjects draws the live distance lines from the selected item to
// its nearest obstacle in each direction
func (r *planViewRenderer) distanceObjects(focal plan.Item) []fyne.CanvasObject {
	v := r.view
	bounds := focal.VisualBounds()
	center := bounds.Center()

	var objects []fyne.CanvasObject
	for _, m := range analysis.Distances(focal, v.plan.OtherItems(focal.ID), v.plan.Room) {
		var from, to geometry.Vector2
		if m.Direction == analysis.DirLeft || m.Direction == analysis.DirRight {
			from = geometry.NewVector2(m.ItemEdge, center.Y)
			to = geometry.NewVector2(m.ObstacleEdge, center.Y)
		} else {
			from = geometry.NewVector2(center.X, m.ItemEdge)
			to = geometry.NewVector2(center.X, m.ObstacleEdge)
		}

		objects = append(objects, r.worldLine(from, to, colorDistance))

		label := canvas.NewText(fmt.Sprintf("%.0f", m.Distance), colorDistance)
		label.TextSize = 10
		mid := v.viewport.WorldToScreen(from.Add(to).Mul(0.5))
		label.Move(fyne.NewPos(float32(mid.X)+3, float32(mid.Y)+3))
		objects = append(objects, label)
	}
	return objects
}

func (r *planViewRenderer) measurementObjects(start, end geometry.Vector2, length float64) []fyne.CanvasObject {
	line := r.worldLine(start, end, colorMeasure)

	label := canvas.NewText(fmt.Sprintf("%.1f cm", length), colorMeasure)
	label.TextSize = 11
	mid := r.view.viewport.WorldToScreen(start.Add(end).Mul(0.5))
	label.Move(fyne.NewPos(float32(mid.X)+4, float32(mid.Y)-14))

	return []fyne.CanvasObject{line, label}
}

func (r *planViewRenderer) worldRect(world geometry.Rect, fill color.Color, stroke color.Color) *canvas.Rectangle {
	rect := canvas.NewRectangle(fill)
	if stroke != nil {
		rect.StrokeColor = stroke
		rect.StrokeWidth = 2
	}

	topLeft := r.view.viewport.WorldToScreen(geometry.NewVector2(world.X, world.Y))
	scale := r.view.viewport.EffectiveScale()
	rect.Move(fyne.NewPos(float32(topLeft.X), float32(topLeft.Y)))
	rect.Resize(fyne.NewSize(float32(world.Width*scale), float32(world.Height*scale)))
	return rect
}

func (r *planViewRenderer) worldLine(from, to geometry.Vector2, col color.Color) *canvas.Line {
	line := canvas.NewLine(col)
	line.StrokeWidth = 1.5

	p1 := r.view.viewport.WorldToScreen(from)
	p2 := r.view.viewport.WorldToScreen(to)
	line.Position1 = fyne.NewPos(float32(p1.X), float32(p1.Y))
	line.Position2 = fyne.NewPos(float32(p2.X), float32(p2.Y))
	return line
}

func (r *planViewRenderer) placeAt(obj fyne.CanvasObject, world geometry.Vector2, size float32) {
	p := r.view.viewport.WorldToScreen(world)
	obj.Move(fyne.NewPos(float32(p.X)-size/2, float32(p.Y)-size/2))
	obj.Resize(fyne.NewSize(size, size))
}

var (
	colorBackground  = color.NRGBA{R: 0x26, G: 0x29, B: 0x2e, A: 0xff}
	colorFloor       = color.NRGBA{R: 0xf5, G: 0xf1, B: 0xe8, A: 0xff}
	colorWall        = color.NRGBA{R: 0x45, G: 0x48, B: 0x4d, A: 0xff}
	colorBlockedZone = color.NRGBA{R: 0xc8, G: 0xc2, B: 0xb4, A: 0x90}
	colorSelection   = color.NRGBA{R: 0x2e, G: 0x7d, B: 0xff, A: 0xff}
	colorDistance    = color.NRGBA{R: 0x2e, G: 0x7d, B: 0xff, A: 0xc0}
	colorMeasure     = color.NRGBA{R: 0xe6, G: 0x51, B: 0x00, A: 0xff}
	colorDoorSwing   = color.NRGBA{R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff}
	colorLabel       = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	colorFurniture   = color.NRGBA{R: 0x90, G: 0xa4, B: 0xae, A: 0xff}
	colorDoor        = color.NRGBA{R: 0xd7, G: 0xb3, B: 0x77, A: 0xff}
	colorWindow      = color.NRGBA{R: 0x9a, G: 0xc8, B: 0xe8, A: 0xff}
)

func itemColor(it plan.Item) color.Color {
	switch it.Kind {
	case plan.KindDoor:
		return colorDoor
	case plan.KindWindow:
		return colorWindow
	case plan.KindInnerWall:
		return colorWall
	}
	if c, ok := parseHexColor(it.Color); ok {
		return c
	}
	return colorFurniture
}

// parseHexColor parses a #rrggbb string
func parseHexColor(s string) (color.NRGBA, bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, false
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, true
}
