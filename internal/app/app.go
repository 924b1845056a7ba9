package app

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goplan/internal/config"
	"github.com/philipparndt/goplan/pkg/analysis"
	"github.com/philipparndt/goplan/pkg/placement"
	"github.com/philipparndt/goplan/pkg/plan"
	"github.com/philipparndt/goplan/pkg/snap"
	"github.com/philipparndt/goplan/pkg/units"
	"github.com/philipparndt/goplan/pkg/watcher"
)

const reloadDebounce = 200 * time.Millisecond

// App is the interactive plan editor window
type App struct {
	window  fyne.Window
	path    string
	plan    *plan.Plan
	view    *planView
	watcher *watcher.PlanWatcher

	dirty bool

	itemLabel    *widget.Label
	statusLabel  *widget.Label
	distanceRows map[analysis.Direction]*widget.Entry
	measureCheck *widget.Check
}

// Run opens the editor for the given plan file and blocks until the window
// closes
func Run(path string, cfg config.Config) error {
	p, err := plan.Load(path)
	if err != nil {
		return err
	}

	a := fyneapp.New()
	w := a.NewWindow("goplan - " + path)

	editor := &App{
		window: w,
		path:   path,
		plan:   p,
	}
	editor.setupUI()

	pw, err := watcher.New(path, reloadDebounce, editor.reloadFromDisk)
	if err != nil {
		return err
	}
	editor.watcher = pw
	defer pw.Close()

	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	w.ShowAndRun()
	return nil
}

func (a *App) setupUI() {
	a.view = newPlanView(a.plan, a.onSelect, a.markDirty)
	a.itemLabel = widget.NewLabel("Nothing selected")
	a.itemLabel.Wrapping = fyne.TextWrapWord
	a.statusLabel = widget.NewLabel("")

	a.distanceRows = map[analysis.Direction]*widget.Entry{}
	distancePanel := container.NewVBox(widget.NewLabel("Distances:"))
	for _, dir := range analysis.Directions {
		entry := widget.NewEntry()
		entry.OnSubmitted = func(text string) { a.applyDistance(dir, text) }
		a.distanceRows[dir] = entry
		row := container.NewBorder(nil, nil, widget.NewLabel(fmt.Sprintf("%-5s", dir)), nil, entry)
		distancePanel.Add(row)
	}

	a.measureCheck = widget.NewCheck("Measure tool", func(on bool) {
		a.view.SetMeasureMode(on)
	})

	sidePanel := container.NewVBox(
		widget.NewLabel("Add furniture:"),
		a.catalogSelect(),
		widget.NewSeparator(),
		widget.NewLabel("Add to wall:"),
		container.NewGridWithColumns(3,
			widget.NewButton("Door", func() { a.addWallItem(plan.KindDoor, "Door", 90) }),
			widget.NewButton("Window", func() { a.addWallItem(plan.KindWindow, "Window", 120) }),
			widget.NewButton("Wall", a.addInnerWall),
		),
		widget.NewSeparator(),
		widget.NewLabel("Selection:"),
		a.itemLabel,
		container.NewGridWithColumns(2,
			widget.NewButton("Rotate", a.rotateSelected),
			widget.NewButton("Delete", a.deleteSelected),
		),
		distancePanel,
		widget.NewSeparator(),
		a.measureCheck,
		widget.NewButton("Clear measurements", a.clearMeasurements),
		widget.NewSeparator(),
		container.NewGridWithColumns(3,
			widget.NewButton("+", func() { a.zoom(1) }),
			widget.NewButton("-", func() { a.zoom(-1) }),
			widget.NewButton("Fit", a.resetView),
		),
		widget.NewButton("Save", a.save),
		a.statusLabel,
	)

	sideScroll := container.NewVScroll(sidePanel)
	sideScroll.SetMinSize(fyne.NewSize(260, 0))

	a.window.SetContent(container.NewBorder(nil, nil, nil, sideScroll, a.view))

	a.window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeyEscape:
			a.view.cancelGesture()
			a.setStatus("Cancelled")
		case fyne.KeyDelete, fyne.KeyBackspace:
			a.deleteSelected()
		}
	})
}

// catalogSelect builds the furniture dropdown from the presets suited to
// the room type
func (a *App) catalogSelect() *widget.Select {
	entries := plan.SuggestionsFor(a.plan.Room.RoomType)
	byLabel := map[string]plan.CatalogEntry{}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		byLabel[e.Label] = e
		names = append(names, fmt.Sprintf("%s (%gx%g)", e.Label, e.Width, e.Height))
	}

	sel := widget.NewSelect(names, nil)
	sel.PlaceHolder = "Choose a preset"
	sel.OnChanged = func(name string) {
		for _, e := range entries {
			if fmt.Sprintf("%s (%gx%g)", e.Label, e.Width, e.Height) == name {
				a.addFurniture(e)
				break
			}
		}
		sel.ClearSelected()
	}
	return sel
}

func (a *App) addFurniture(entry plan.CatalogEntry) {
	placed, ok := placement.PlaceItem(entry.NewItem(), a.plan.Room, a.plan.Items, nil)
	if !ok {
		a.setStatus("No free position for " + entry.Label)
		return
	}
	a.plan.AddItem(placed)
	a.markDirty()
	a.view.setSelected(placed.ID)
	a.setStatus("Added " + entry.Label)
}

func (a *App) addWallItem(kind plan.Kind, label string, length float64) {
	item := plan.NewItem(kind, label, length, units.WallThicknessCm)
	placed, ok := placement.PlaceItem(item, a.plan.Room, a.plan.Items, nil)
	if !ok {
		a.setStatus("No free wall span for " + label)
		return
	}
	a.plan.AddItem(placed)
	a.markDirty()
	a.view.setSelected(placed.ID)
	a.setStatus("Added " + label)
}

func (a *App) addInnerWall() {
	// Default to a wall segment spanning half the room height
	item := plan.NewItem(plan.KindInnerWall, "Wall", units.WallThicknessCm, a.plan.Room.Height/2)
	placed, ok := placement.PlaceItem(item, a.plan.Room, a.plan.Items, nil)
	if !ok {
		a.setStatus("No free position for an interior wall")
		return
	}
	a.plan.AddItem(placed)
	a.markDirty()
	a.view.setSelected(placed.ID)
	a.setStatus("Added interior wall")
}

func (a *App) rotateSelected() {
	item, ok := a.view.Selected()
	if !ok {
		return
	}
	if item.WallAnchored() {
		// Doors flip their swing; windows have nothing to rotate
		if item.Kind != plan.KindDoor {
			return
		}
		item.Rotation = (item.Rotation + 180).Normalize()
	} else {
		// The swapped visual box can hang over a wall near the room edge
		item.Rotation = (item.Rotation + 90).Normalize()
		item = snap.ClampIntoRoom(item, a.plan.Room)
	}
	a.plan.ReplaceItem(item)
	a.markDirty()
	a.onSelect(item.ID)
	a.view.Refresh()
}

func (a *App) deleteSelected() {
	item, ok := a.view.Selected()
	if !ok {
		return
	}
	a.plan.RemoveItem(item.ID)
	a.markDirty()
	a.view.setSelected("")
	a.setStatus("Deleted " + item.ID)
}

func (a *App) clearMeasurements() {
	a.plan.Measurements = nil
	a.markDirty()
	a.view.Refresh()
}

// applyDistance moves the selected item so its gap in the given direction
// equals the entered value
func (a *App) applyDistance(dir analysis.Direction, text string) {
	item, ok := a.view.Selected()
	if !ok {
		return
	}

	target, err := strconv.ParseFloat(text, 64)
	if err != nil {
		a.setStatus("Invalid distance: " + text)
		return
	}

	pos, ok := analysis.PositionForDistance(item, a.plan.OtherItems(item.ID), a.plan.Room, dir, target)
	if !ok {
		a.setStatus("Distance not applicable")
		return
	}

	// Doors and windows stay locked to their wall: only the along-wall
	// component of the solved position is applied.
	item = snap.MoveTo(item, pos, a.plan.Room)
	a.plan.ReplaceItem(item)
	a.markDirty()
	a.onSelect(item.ID)
	a.view.Refresh()
}

func (a *App) zoom(direction int) {
	a.view.viewport.ZoomAtViewportCenter(direction)
	a.view.Refresh()
}

func (a *App) resetView() {
	a.view.viewport.ResetToFit()
	a.view.Refresh()
}

// onSelect refreshes the side panel for the newly selected item
func (a *App) onSelect(id string) {
	item, ok := a.plan.ItemByID(id)
	if !ok {
		a.itemLabel.SetText("Nothing selected")
		for _, entry := range a.distanceRows {
			entry.SetText("")
		}
		return
	}

	label := item.Label
	if label == "" {
		label = string(item.Kind)
	}
	bounds := item.VisualBounds()
	a.itemLabel.SetText(fmt.Sprintf("%s\n(%.0f, %.0f) %.0fx%.0f cm, %d°",
		label, bounds.X, bounds.Y, bounds.Width, bounds.Height, item.Rotation))

	for i, m := range analysis.Distances(item, a.plan.OtherItems(item.ID), a.plan.Room) {
		a.distanceRows[analysis.Directions[i]].SetText(fmt.Sprintf("%.1f", m.Distance))
	}
}

func (a *App) markDirty() {
	a.dirty = true
	if sel, ok := a.view.Selected(); ok {
		a.onSelect(sel.ID)
	}
}

func (a *App) save() {
	if err := plan.Save(a.plan, a.path); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.dirty = false
	a.setStatus("Saved " + a.path)
}

// reloadFromDisk picks up external edits to the plan file. Unsaved editor
// changes win over the file. The callback arrives on the watcher goroutine,
// so all state access happens inside the UI thread closure.
func (a *App) reloadFromDisk(path string) {
	fyne.Do(func() {
		if a.dirty {
			return
		}

		p, err := plan.Load(path)
		if err != nil {
			return
		}

		a.plan = p
		a.view.SetPlan(p)
		a.setStatus("Reloaded from disk")
	})
}

func (a *App) setStatus(text string) {
	a.statusLabel.SetText(text)
}
