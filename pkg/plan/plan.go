// Package plan defines the room planner's data model: the room, the items
// placed in it and user-drawn measurements. The interaction engines treat
// these values as read-only input and return updated copies; the Plan struct
// is the single authoritative store the application mutates.
package plan

// Plan is a complete room layout document
type Plan struct {
	Version      int                 `json:"version"`
	Room         RoomConfig          `json:"room"`
	Items        []Item              `json:"items"`
	Measurements []ManualMeasurement `json:"measurements,omitempty"`
}

// New creates an empty plan for the given room
func New(room RoomConfig) *Plan {
	return &Plan{
		Version: FormatVersion,
		Room:    room,
	}
}

// ItemByID returns the item with the given ID
func (p *Plan) ItemByID(id string) (Item, bool) {
	for _, it := range p.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// AddItem appends an item to the plan
func (p *Plan) AddItem(it Item) {
	p.Items = append(p.Items, it)
}

// ReplaceItem swaps the stored item with the same ID for the given one
func (p *Plan) ReplaceItem(it Item) bool {
	for i := range p.Items {
		if p.Items[i].ID == it.ID {
			p.Items[i] = it
			return true
		}
	}
	return false
}

// RemoveItem deletes the item with the given ID
func (p *Plan) RemoveItem(id string) bool {
	for i := range p.Items {
		if p.Items[i].ID == id {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return true
		}
	}
	return false
}

// OtherItems returns all items except the one with the given ID
func (p *Plan) OtherItems(id string) []Item {
	others := make([]Item, 0, len(p.Items))
	for _, it := range p.Items {
		if it.ID != id {
			others = append(others, it)
		}
	}
	return others
}

// AddMeasurement appends a manual measurement
func (p *Plan) AddMeasurement(m ManualMeasurement) {
	p.Measurements = append(p.Measurements, m)
}

// RemoveMeasurement deletes the measurement with the given ID
func (p *Plan) RemoveMeasurement(id string) bool {
	for i := range p.Measurements {
		if p.Measurements[i].ID == id {
			p.Measurements = append(p.Measurements[:i], p.Measurements[i+1:]...)
			return true
		}
	}
	return false
}
