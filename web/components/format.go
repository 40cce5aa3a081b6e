package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Xordas/ScreenX/model"
	"github.com/Xordas/ScreenX/widgets"
)

func onOff(v bool) string {
	if v {
		return "ON"
	}

	return "OFF"
}

func rounded(v float64) string {
	return strconv.FormatFloat(math.Floor(v+0.5), 'f', 0, 64)
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// FormatValue renders a telemetry value the way the dashboard cards show it. Unknown
// kinds format as an empty string.
func FormatValue(kind model.WidgetKind, s model.Snapshot) string {
	switch kind {
	case model.KindGear:
		return s.Gear
	case model.KindSpeed:
		return rounded(s.Speed)
	case model.KindRPM:
		return strconv.FormatFloat(s.RPM, 'f', -1, 64)
	case model.KindThrottle:
		return percent(s.Throttle)
	case model.KindBrake:
		return percent(s.Brake)
	case model.KindClutch:
		return percent(s.Clutch)
	case model.KindFuel:
		return fmt.Sprintf("%.1f L", s.Fuel)
	case model.KindBoost:
		return fmt.Sprintf("%.2f", s.Boost)
	case model.KindAirTemp:
		return rounded(s.AirTemp)
	case model.KindRoadTemp:
		return rounded(s.RoadTemp)
	case model.KindBrakeTemp:
		return rounded(s.BrakeTemp)
	case model.KindSteer:
		return fmt.Sprintf("%.2f", s.Steer)
	case model.KindPit:
		return onOff(s.Pit)
	case model.KindDRS:
		return onOff(s.DRS)
	case model.KindABSTC:
		return "ABS " + onOff(s.ABS) + " / TC " + onOff(s.TC)
	case model.KindTires:
		parts := make([]string, len(s.TireDisplayPct))
		for i, pct := range s.TireDisplayPct {
			parts[i] = fmt.Sprintf("%.1f%%", pct)
		}

		return strings.Join(parts, " ")
	default:
		return ""
	}
}

// BuildCards returns one card per active kind, in the given order. Kinds missing from the
// catalog are skipped.
func BuildCards(kinds []model.WidgetKind, catalog *widgets.Catalog, s model.Snapshot) []Card {
	cards := make([]Card, 0, len(kinds))

	for _, kind := range kinds {
		d, ok := catalog.Lookup(kind)
		if !ok {
			continue
		}

		cards = append(cards, Card{Kind: kind, Label: d.Label, Value: FormatValue(kind, s)})
	}

	return cards
}

// BuildSlots lists every zone slot of l with its catalog label.
func BuildSlots(l model.Layout, catalog *widgets.Catalog) []Slot {
	slots := make([]Slot, 0, 2*len(model.ZoneNames))

	for _, name := range model.ZoneNames {
		cfg, _ := l.Zone(name)

		for _, slot := range []struct {
			importance model.Importance
			kind       model.WidgetKind
		}{{model.Primary, cfg.Primary}, {model.Secondary, cfg.Secondary}} {
			label := widgets.None.Label
			if d, ok := catalog.Lookup(slot.kind); ok {
				label = d.Label
			} else if !slot.kind.IsNone() {
				label = string(slot.kind)
			}

			slots = append(slots, Slot{Zone: name, Importance: slot.importance, Kind: slot.kind, Label: label})
		}
	}

	return slots
}
