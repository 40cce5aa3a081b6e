// Package layout holds the default widget arrangement and the layout file formats.
package layout

import (
	"fmt"
	"strings"

	"github.com/Xordas/ScreenX/model"
	"github.com/Xordas/ScreenX/widgets"
)

const DefaultName = "Default"

// legacyKinds maps spellings found in older presets to current kinds.
var legacyKinds = map[string]model.WidgetKind{
	"Tires": model.KindTires,
	"":      model.KindNone,
}

// Default returns the factory layout shown before the user changes anything.
func Default() model.Layout {
	return model.Layout{
		Name:   DefaultName,
		Left:   model.ZoneConfig{Primary: model.KindTires, Secondary: model.KindABSTC},
		Middle: model.ZoneConfig{Primary: model.KindGear, Secondary: model.KindRPM},
		Right:  model.ZoneConfig{Primary: model.KindPit, Secondary: model.KindSpeed},
	}
}

// NormalizeKind rewrites legacy and empty kind names.
func NormalizeKind(kind model.WidgetKind) model.WidgetKind {
	if k, ok := legacyKinds[string(kind)]; ok {
		return k
	}

	return kind
}

// Normalize returns l with every slot normalised by NormalizeKind.
func Normalize(l model.Layout) model.Layout {
	zone := func(z model.ZoneConfig) model.ZoneConfig {
		return model.ZoneConfig{Primary: NormalizeKind(z.Primary), Secondary: NormalizeKind(z.Secondary)}
	}

	l.Left = zone(l.Left)
	l.Middle = zone(l.Middle)
	l.Right = zone(l.Right)

	return l
}

// Problem describes a slot whose kind the catalog does not know.
type Problem struct {
	Zone       model.ZoneName
	Importance model.Importance
	Kind       model.WidgetKind
}

func (p Problem) Error() string {
	return fmt.Sprintf("unknown widget %q in %s %s slot", p.Kind, p.Zone, p.Importance)
}

// Validate lists the slots that would be skipped when rendering with catalog.
// Layouts with problems are still usable.
func Validate(l model.Layout, catalog *widgets.Catalog) []Problem {
	var problems []Problem

	for i, z := range l.Zones() {
		slots := []struct {
			imp  model.Importance
			kind model.WidgetKind
		}{{model.Primary, z.Primary}, {model.Secondary, z.Secondary}}

		for _, s := range slots {
			if s.kind.IsNone() || catalog.Has(s.kind) {
				continue
			}

			problems = append(problems, Problem{Zone: model.ZoneNames[i], Importance: s.imp, Kind: s.kind})
		}
	}

	return problems
}

// ActiveKinds returns the distinct kinds placed in l, left to right, primary first.
func ActiveKinds(l model.Layout) []model.WidgetKind {
	seen := make(map[model.WidgetKind]bool)

	var result []model.WidgetKind

	for _, z := range l.Zones() {
		for _, k := range []model.WidgetKind{z.Primary, z.Secondary} {
			if k.IsNone() || seen[k] {
				continue
			}

			seen[k] = true
			result = append(result, k)
		}
	}

	return result
}

// Describe renders a compact one-line summary, handy for logs.
func Describe(l model.Layout) string {
	var sb strings.Builder

	sb.WriteString(l.Name)
	sb.WriteString(":")

	for i, z := range l.Zones() {
		fmt.Fprintf(&sb, " %s=%s/%s", model.ZoneNames[i], NormalizeKind(z.Primary), NormalizeKind(z.Secondary))
	}

	return sb.String()
}
