package components

import "github.com/Xordas/ScreenX/model"

// Card is one dashboard tile.
type Card struct {
	Kind  model.WidgetKind
	Label string
	Value string
}

// Slot describes what one zone slot currently shows.
type Slot struct {
	Zone       model.ZoneName
	Importance model.Importance
	Kind       model.WidgetKind
	Label      string
}

type PageContext struct {
	Title   string
	Summary string
	Slots   []Slot
	Cards   []Card
	Presets []string

	// Width of the preview images in CSS pixels.
	Width int
	// Seconds between page reloads. Zero disables reloading.
	Refresh int
}
