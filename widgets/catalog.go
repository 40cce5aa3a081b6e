// Package widgets describes the widget kinds a layout can place into zone slots.
package widgets

import "github.com/Xordas/ScreenX/model"

type Descriptor struct {
	Kind        model.WidgetKind `json:"kind"`
	Label       string           `json:"label"`
	Description string           `json:"description"`
}

// None describes an empty slot. It is never part of a catalog.
var None = Descriptor{Kind: model.KindNone, Label: "None", Description: "Empty"}

// Catalog is an ordered, read-only set of widget descriptors.
type Catalog struct {
	order  []model.WidgetKind
	byKind map[model.WidgetKind]Descriptor
}

// NewCatalog builds a catalog from descriptors. Later duplicates replace earlier ones
// but keep the original position; descriptors for the none kind are ignored.
func NewCatalog(descriptors ...Descriptor) *Catalog {
	c := &Catalog{
		order:  make([]model.WidgetKind, 0, len(descriptors)),
		byKind: make(map[model.WidgetKind]Descriptor, len(descriptors)),
	}

	for _, d := range descriptors {
		if d.Kind.IsNone() {
			continue
		}

		if _, ok := c.byKind[d.Kind]; !ok {
			c.order = append(c.order, d.Kind)
		}

		c.byKind[d.Kind] = d
	}

	return c
}

// Default returns the full catalog of widgets the device firmware can draw.
func Default() *Catalog {
	return NewCatalog(
		Descriptor{model.KindGear, "Gear", "Current gear indicator"},
		Descriptor{model.KindSpeed, "Speed (km/h)", "Vehicle speed"},
		Descriptor{model.KindRPM, "RPM", "Engine RPM"},
		Descriptor{model.KindThrottle, "Throttle %", "Gas pedal position"},
		Descriptor{model.KindBrake, "Brake %", "Brake pedal position"},
		Descriptor{model.KindFuel, "Fuel", "Fuel level"},
		Descriptor{model.KindTires, "Tire Bars", "4 Tire wear bars"},
		Descriptor{model.KindABSTC, "ABS / TC", "ABS and TC alerts"},
		Descriptor{model.KindPit, "Pit Limiter", "Pit limiter alert"},
		Descriptor{model.KindBoost, "Turbo Boost", "Turbo boost pressure"},
		Descriptor{model.KindAirTemp, "Air Temp", "Ambient temperature"},
		Descriptor{model.KindRoadTemp, "Road Temp", "Road temperature"},
		Descriptor{model.KindDRS, "DRS", "DRS status"},
		Descriptor{model.KindClutch, "Clutch %", "Clutch position"},
		Descriptor{model.KindSteer, "Steer Angle", "Steering wheel angle"},
		Descriptor{model.KindBrakeTemp, "Brake Temp", "Average brake temperature"},
	)
}

func (c *Catalog) Lookup(kind model.WidgetKind) (Descriptor, bool) {
	if c == nil {
		return Descriptor{}, false
	}

	d, ok := c.byKind[kind]

	return d, ok
}

func (c *Catalog) Has(kind model.WidgetKind) bool {
	_, ok := c.Lookup(kind)

	return ok
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.order)
}

// Descriptors returns the catalog entries in registration order.
func (c *Catalog) Descriptors() []Descriptor {
	if c == nil {
		return nil
	}

	result := make([]Descriptor, 0, len(c.order))
	for _, k := range c.order {
		result = append(result, c.byKind[k])
	}

	return result
}

// Options returns the choices for a slot selector: None first, then every entry.
func (c *Catalog) Options() []Descriptor {
	return append([]Descriptor{None}, c.Descriptors()...)
}
