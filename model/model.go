package model

// WidgetKind identifies a display widget that can be placed into a zone slot.
type WidgetKind string

const (
	KindNone      WidgetKind = "none"
	KindGear      WidgetKind = "gear"
	KindSpeed     WidgetKind = "speed"
	KindRPM       WidgetKind = "rpm"
	KindThrottle  WidgetKind = "throttle"
	KindBrake     WidgetKind = "brake"
	KindClutch    WidgetKind = "clutch"
	KindFuel      WidgetKind = "fuel"
	KindTires     WidgetKind = "tires"
	KindABSTC     WidgetKind = "abs_tc"
	KindPit       WidgetKind = "pit"
	KindBoost     WidgetKind = "boost"
	KindAirTemp   WidgetKind = "air_temp"
	KindRoadTemp  WidgetKind = "road_temp"
	KindBrakeTemp WidgetKind = "brake_temp"
	KindDRS       WidgetKind = "drs"
	KindSteer     WidgetKind = "steer"
)

// IsNone reports whether the slot is empty. An empty string counts as none.
func (k WidgetKind) IsNone() bool {
	return k == "" || k == KindNone
}

type Importance int

const (
	Primary Importance = iota
	Secondary
)

func (i Importance) String() string {
	if i == Secondary {
		return "secondary"
	}

	return "primary"
}

type ZoneName string

const (
	ZoneLeft   ZoneName = "left"
	ZoneMiddle ZoneName = "middle"
	ZoneRight  ZoneName = "right"
)

// ZoneNames lists the zones left to right.
var ZoneNames = []ZoneName{ZoneLeft, ZoneMiddle, ZoneRight}

type ZoneConfig struct {
	Primary   WidgetKind `json:"primary"   yaml:"primary"`
	Secondary WidgetKind `json:"secondary" yaml:"secondary"`
}

func (z ZoneConfig) HasSecondary() bool {
	return !z.Secondary.IsNone()
}

type Layout struct {
	Name   string     `json:"name"   yaml:"name"`
	Left   ZoneConfig `json:"left"   yaml:"left"`
	Middle ZoneConfig `json:"middle" yaml:"middle"`
	Right  ZoneConfig `json:"right"  yaml:"right"`
}

// Zone returns the configuration of the named zone.
func (l Layout) Zone(name ZoneName) (ZoneConfig, bool) {
	switch name {
	case ZoneLeft:
		return l.Left, true
	case ZoneMiddle:
		return l.Middle, true
	case ZoneRight:
		return l.Right, true
	default:
		return ZoneConfig{}, false
	}
}

// Zones returns the zone configurations in ZoneNames order.
func (l Layout) Zones() []ZoneConfig {
	return []ZoneConfig{l.Left, l.Middle, l.Right}
}
