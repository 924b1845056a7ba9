package plan

// CatalogEntry is a furniture preset with real-world default dimensions.
// The suggestion UI filters entries by room type; geometry code only ever
// sees the resulting items.
type CatalogEntry struct {
	Label  string
	Width  float64
	Height float64
	Color  string
	Rooms  []RoomType
}

// NewItem creates a furniture item from the preset
func (e CatalogEntry) NewItem() Item {
	it := NewItem(KindFurniture, e.Label, e.Width, e.Height)
	it.Color = e.Color
	return it
}

// Catalog returns the built-in furniture presets
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{Label: "Bed", Width: 180, Height: 200, Color: "#8d6e63", Rooms: []RoomType{RoomBedroom}},
		{Label: "Single bed", Width: 90, Height: 200, Color: "#8d6e63", Rooms: []RoomType{RoomBedroom}},
		{Label: "Wardrobe", Width: 150, Height: 60, Color: "#6d4c41", Rooms: []RoomType{RoomBedroom}},
		{Label: "Sofa", Width: 220, Height: 95, Color: "#546e7a", Rooms: []RoomType{RoomLiving}},
		{Label: "Armchair", Width: 85, Height: 85, Color: "#546e7a", Rooms: []RoomType{RoomLiving}},
		{Label: "Coffee table", Width: 110, Height: 60, Color: "#a1887f", Rooms: []RoomType{RoomLiving}},
		{Label: "Dining table", Width: 160, Height: 90, Color: "#a1887f", Rooms: []RoomType{RoomLiving, RoomKitchen}},
		{Label: "Chair", Width: 45, Height: 45, Color: "#90a4ae", Rooms: []RoomType{RoomLiving, RoomKitchen, RoomOffice}},
		{Label: "Desk", Width: 140, Height: 70, Color: "#a1887f", Rooms: []RoomType{RoomOffice}},
		{Label: "Bookshelf", Width: 80, Height: 30, Color: "#6d4c41", Rooms: []RoomType{RoomLiving, RoomOffice}},
		{Label: "Kitchen unit", Width: 60, Height: 60, Color: "#78909c", Rooms: []RoomType{RoomKitchen}},
		{Label: "Fridge", Width: 60, Height: 65, Color: "#b0bec5", Rooms: []RoomType{RoomKitchen}},
		{Label: "Bathtub", Width: 170, Height: 75, Color: "#81d4fa", Rooms: []RoomType{RoomBath}},
		{Label: "Sink", Width: 60, Height: 45, Color: "#b3e5fc", Rooms: []RoomType{RoomBath, RoomKitchen}},
		{Label: "Toilet", Width: 40, Height: 65, Color: "#eceff1", Rooms: []RoomType{RoomBath}},
	}
}

// SuggestionsFor returns the catalog entries suited to a room type. An empty
// room type returns the full catalog.
func SuggestionsFor(roomType RoomType) []CatalogEntry {
	if roomType == "" {
		return Catalog()
	}

	var entries []CatalogEntry
	for _, e := range Catalog() {
		for _, rt := range e.Rooms {
			if rt == roomType {
				entries = append(entries, e)
				break
			}
		}
	}
	return entries
}
