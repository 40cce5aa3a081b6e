package render

import "github.com/Xordas/ScreenX/model"

// SplitY is where a zone with a secondary widget is divided.
const SplitY = 42

// Separator x positions, on the pixel centres between zones.
var SeparatorX = [2]float64{78.5, 177.5}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

type Zone struct {
	Name   model.ZoneName
	Bounds Rect
}

// Zones returns the three columns, left to right. They do not overlap and, with the
// one-pixel separator column after the left zone, span the full display width.
func Zones() []Zone {
	return []Zone{
		{model.ZoneLeft, Rect{X: 0, Y: 0, W: 78, H: LogicalHeight}},
		{model.ZoneMiddle, Rect{X: 79, Y: 0, W: 99, H: LogicalHeight}},
		{model.ZoneRight, Rect{X: 178, Y: 0, W: 78, H: LogicalHeight}},
	}
}

// Region is the part of a zone one widget draws into.
type Region struct {
	Rect
	Importance model.Importance
}

// SplitZone returns the regions of a zone. With a secondary widget the primary gets the
// top part down to SplitY and the secondary the rest; otherwise the primary owns it all.
func SplitZone(bounds Rect, cfg model.ZoneConfig) (Region, Region, bool) {
	if !cfg.HasSecondary() {
		return Region{Rect: bounds, Importance: model.Primary}, Region{}, false
	}

	primary := Region{
		Rect:       Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: SplitY - bounds.Y},
		Importance: model.Primary,
	}
	secondary := Region{
		Rect:       Rect{X: bounds.X, Y: SplitY, W: bounds.W, H: bounds.Bottom() - SplitY},
		Importance: model.Secondary,
	}

	return primary, secondary, true
}

func drawSeparators(c Canvas) {
	c.SetColor(White)

	for _, x := range SeparatorX {
		c.DashedLine(x, 0, x, LogicalHeight, 2, 3)
	}
}

func drawSplitRule(c Canvas, bounds Rect) {
	c.SetColor(White)
	c.DashedLine(bounds.X+4, SplitY+0.5, bounds.Right()-4, SplitY+0.5, 1, 2)
}
