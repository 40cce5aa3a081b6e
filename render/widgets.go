package render

import (
	"math"

	"github.com/Xordas/ScreenX/model"
)

// frameState is what a widget needs besides its region.
type frameState struct {
	snap    model.Snapshot
	blinkOn bool
}

type drawFunc func(c Canvas, r Region, f *frameState)

// drawers maps every kind the renderer can draw. Kinds missing here, or missing from the
// renderer's catalog, are skipped.
var drawers = map[model.WidgetKind]drawFunc{
	model.KindGear:      drawGear,
	model.KindSpeed:     drawSpeed,
	model.KindRPM:       drawRPM,
	model.KindThrottle:  barDrawer("Throttle", func(s model.Snapshot) float64 { return s.Throttle }),
	model.KindBrake:     barDrawer("Brake", func(s model.Snapshot) float64 { return s.Brake }),
	model.KindClutch:    barDrawer("Clutch", func(s model.Snapshot) float64 { return s.Clutch }),
	model.KindFuel:      barDrawer("Fuel", func(s model.Snapshot) float64 { return s.Fuel }),
	model.KindTires:     drawTires,
	model.KindABSTC:     drawABSTC,
	model.KindPit:       drawPit,
	model.KindDRS:       drawDRS,
	model.KindBoost:     valueDrawer("bar", func(s model.Snapshot) string { return boostText(s.Boost) }),
	model.KindAirTemp:   valueDrawer("Air", func(s model.Snapshot) string { return degreesText(s.AirTemp) }),
	model.KindRoadTemp:  valueDrawer("Road", func(s model.Snapshot) string { return degreesText(s.RoadTemp) }),
	model.KindSteer:     valueDrawer("Steer", func(s model.Snapshot) string { return steerText(s.Steer) }),
	model.KindBrakeTemp: valueDrawer("BrkT", func(s model.Snapshot) string { return degreesText(s.BrakeTemp) }),
}

// CanDraw reports whether the renderer has a drawing routine for kind.
func CanDraw(kind model.WidgetKind) bool {
	_, ok := drawers[kind]

	return ok
}

func isPrimary(r Region) bool {
	return r.Importance == model.Primary
}

// ascentOr substitutes fallback when the measured ascent is zero.
func ascentOr(m TextMetrics, fallback float64) float64 {
	if m.Ascent > 0 {
		return m.Ascent
	}

	return fallback
}

func descentOr(m TextMetrics, fallback float64) float64 {
	if m.Descent > 0 {
		return m.Descent
	}

	return fallback
}

func centeredX(r Region, width float64) float64 {
	return roundHalfUp(r.X + (r.W-width)/2)
}

func drawGear(c Canvas, r Region, f *frameState) {
	gear := f.snap.Gear
	if gear == "" {
		gear = "N"
	}

	digit := len(gear) == 1 && gear[0] >= '0' && gear[0] <= '9'

	var start float64

	switch {
	case !isPrimary(r) && digit:
		start = 18
	case !isPrimary(r):
		start = 14
	case r.H > 50 && digit:
		start = 46
	case r.H > 50:
		start = 32
	case digit:
		start = 36
	default:
		start = 24
	}

	c.SetColor(White)
	size := FitFont(c, gear, r.W, start, 10, true, FamilySans)
	m := c.MeasureText(gear)
	asc := ascentOr(m, size*0.85)
	th := asc + descentOr(m, 1)
	y := clampTextY(r.Y+(r.H-th)/2+asc, asc, r.Y, r.Bottom())
	c.FillText(gear, centeredX(r, m.Width), roundHalfUp(y))
}

type numberStyle struct {
	primaryLarge, primarySmall, secondary float64
	caption                               string
}

func drawSpeed(c Canvas, r Region, f *frameState) {
	drawNumber(c, r, intText(f.snap.Speed), numberStyle{32, 22, 14, "km/h"})
}

func drawRPM(c Canvas, r Region, f *frameState) {
	drawNumber(c, r, intText(f.snap.RPM), numberStyle{28, 18, 12, "RPM"})
}

func drawNumber(c Canvas, r Region, text string, style numberStyle) {
	start := style.secondary
	if isPrimary(r) {
		start = style.primarySmall
		if r.H > 50 {
			start = style.primaryLarge
		}
	}

	c.SetColor(White)
	size := FitFont(c, text, r.W, start, 9, true, FamilySans)
	m := c.MeasureText(text)
	asc := ascentOr(m, size*0.85)
	th := asc + descentOr(m, 1)
	base := r.Y + (r.H-th)/2 + asc
	c.FillText(text, centeredX(r, m.Width), roundHalfUp(clampTextY(base, asc, r.Y, r.Bottom())))

	if isPrimary(r) && r.H > 30 {
		c.SetFont(Mono(9))
		um := c.MeasureText(style.caption)
		c.FillText(style.caption, centeredX(r, um.Width), roundHalfUp(clampTextY(base+11, 0, r.Y, r.Bottom())))
	}
}

func valueDrawer(caption string, value func(model.Snapshot) string) drawFunc {
	return func(c Canvas, r Region, f *frameState) {
		drawValue(c, r, value(f.snap), caption)
	}
}

func drawValue(c Canvas, r Region, text, caption string) {
	start := 12.0
	if isPrimary(r) {
		start = 16
		if r.H > 50 {
			start = 24
		}
	}

	showCaption := isPrimary(r) && r.H > 30

	c.SetColor(White)
	size := FitFont(c, text, r.W, start, 8, true, FamilySans)
	m := c.MeasureText(text)
	asc := ascentOr(m, size*0.85)
	th := asc + descentOr(m, 1)

	vy := r.Y + (r.H-th)/2 + asc
	if showCaption {
		vy -= 4
	}

	c.FillText(text, centeredX(r, m.Width), roundHalfUp(clampTextY(vy, asc, r.Y, r.Bottom())))

	if showCaption {
		c.SetFont(Mono(9))
		um := c.MeasureText(caption)
		c.FillText(caption, centeredX(r, um.Width), roundHalfUp(clampTextY(vy+11, 0, r.Y, r.Bottom())))
	}
}

func barDrawer(label string, value func(model.Snapshot) float64) drawFunc {
	return func(c Canvas, r Region, f *frameState) {
		drawBar(c, r, roundHalfUp(value(f.snap)), label)
	}
}

const barMargin = 6

func drawBar(c Canvas, r Region, pct float64, label string) {
	barW := r.W - barMargin*2
	barX := r.X + barMargin
	pctLabel := intText(pct) + "%"

	c.SetColor(White)

	var barY, barH float64

	if isPrimary(r) {
		barH = math.Min(6, math.Max(2, r.H-44))

		c.SetFont(Mono(9))
		lm := c.MeasureText(label)
		c.FillText(label, centeredX(r, lm.Width), roundHalfUp(r.Y+math.Min(14, r.H*0.25)))

		FitFont(c, pctLabel, r.W, 16, 9, true, FamilySans)
		pm := c.MeasureText(pctLabel)
		valY := r.Y + math.Min(34, r.H*0.58)
		c.FillText(pctLabel, centeredX(r, pm.Width), roundHalfUp(valY))

		barY = math.Min(r.Bottom()-barH-2, valY+6)
	} else {
		barH = math.Min(4, math.Max(2, r.H-14))

		text := label + " " + pctLabel
		c.SetFont(Mono(8))
		lm := c.MeasureText(text)
		c.FillText(text, centeredX(r, lm.Width), roundHalfUp(r.Y+r.H/2-2))

		barY = r.Y + r.H/2 + 3
		if barY+barH > r.Bottom() {
			return
		}
	}

	c.StrokeRect(barX, barY, barW, barH)

	if fillW := clamp(roundHalfUp(barW*pct/100), 0, barW); fillW > 0 {
		c.FillRect(barX, barY, fillW, barH)
	}
}

// TireGeometry is the placement of the four tire outlines inside a region.
type TireGeometry struct {
	OriginX, OriginY float64
	W, H, Gap        float64
	Radius           float64
}

// Tire returns the outline of tire i (FL, FR, RL, RR).
func (g TireGeometry) Tire(i int) Rect {
	col, row := float64(i%2), float64(i/2)

	return Rect{X: g.OriginX + col*(g.W+g.Gap), Y: g.OriginY + row*(g.H+g.Gap), W: g.W, H: g.H}
}

// TireFillHeight is the filled height inside a tire outline of height h.
func TireFillHeight(h, pct float64) float64 {
	return roundHalfUp((h - 4) * clamp(pct, 0, 100) / 100)
}

// LayoutTires places four tires centred in a 2x2 grid.
func LayoutTires(r Rect) TireGeometry {
	const pad, gap = 2, 3

	tireH := math.Max(4, math.Floor((r.H-pad*2-gap)/2))
	tireW := math.Min(12, math.Floor((r.W-pad*2-gap)/2))

	return TireGeometry{
		OriginX: r.X + (r.W-(tireW*2+gap))/2,
		OriginY: r.Y + (r.H-(tireH*2+gap))/2,
		W:       tireW,
		H:       tireH,
		Gap:     gap,
		Radius:  math.Min(2, tireH/4),
	}
}

func drawTires(c Canvas, r Region, f *frameState) {
	g := LayoutTires(r.Rect)

	c.SetColor(White)

	for i, pct := range f.snap.TireDisplayPct {
		t := g.Tire(i)
		c.StrokeRoundedRect(t.X, t.Y, t.W, t.H, g.Radius)

		innerH := t.H - 4
		if fh := TireFillHeight(t.H, pct); fh > 0 {
			c.FillRect(t.X+2, t.Y+2+innerH-fh, t.W-4, fh)
		}
	}
}

func drawABSTC(c Canvas, r Region, f *frameState) {
	start := 9.0
	if isPrimary(r) {
		start = 10
	}

	c.SetColor(White)
	FitFont(c, "ABS  TC", r.W, start, 7, false, FamilyMono)

	absW := c.MeasureText("ABS").Width
	tcW := c.MeasureText("TC").Width
	gap := math.Max(4, math.Min(12, r.W-absW-tcW-8))
	cy := r.Y + r.H/2
	startX := r.X + (r.W-(absW+gap+tcW))/2

	drawFlag(c, "ABS", startX, cy, absW, f.snap.ABS && f.blinkOn)
	drawFlag(c, "TC", startX+absW+gap, cy, tcW, f.snap.TC && f.blinkOn)
}

func drawFlag(c Canvas, text string, x, cy, w float64, inverted bool) {
	c.SetColor(White)

	if inverted {
		c.FillRect(x-2, cy-7, w+4, 12)
		c.SetColor(Black)
	}

	c.FillText(text, x, cy+3)
	c.SetColor(White)
}

func drawPit(c Canvas, r Region, f *frameState) {
	inverted := f.snap.Pit && f.blinkOn

	if !isPrimary(r) {
		size := FitFont(c, "PIT", r.W, 12, 7, true, FamilySans)
		m := c.MeasureText("PIT")
		asc := ascentOr(m, size*0.8)
		drawBoxedText(c, "PIT", r.X+(r.W-m.Width)/2, r.Y+r.H/2+asc/2, m.Width, asc, inverted)

		return
	}

	const gap = 3

	size1 := FitFont(c, "PIT", r.W, 18, 10, true, FamilySans)
	m1 := c.MeasureText("PIT")
	size2 := FitFont(c, "LIMITER", r.W, 12, 7, true, FamilySans)
	m2 := c.MeasureText("LIMITER")
	asc1 := ascentOr(m1, size1*0.8)
	asc2 := ascentOr(m2, size2*0.8)

	top := r.Y + (r.H-(asc1+gap+asc2))/2 + asc1
	bottom := top + gap + asc2

	FitFont(c, "PIT", r.W, 18, 10, true, FamilySans)
	drawBoxedText(c, "PIT", r.X+(r.W-m1.Width)/2, top, m1.Width, asc1, inverted)

	FitFont(c, "LIMITER", r.W, 12, 7, true, FamilySans)
	drawBoxedText(c, "LIMITER", r.X+(r.W-m2.Width)/2, bottom, m2.Width, asc2, inverted)
}

// drawBoxedText draws text at baseline y, on a filled box when inverted.
func drawBoxedText(c Canvas, text string, x, y, w, asc float64, inverted bool) {
	const pad = 3

	c.SetColor(White)

	if inverted {
		c.FillRect(x-pad, y-asc-1, w+pad*2, asc+4)
		c.SetColor(Black)
	}

	c.FillText(text, x, y)
	c.SetColor(White)
}

func drawDRS(c Canvas, r Region, f *frameState) {
	text := "DRS OFF"
	if f.snap.DRS {
		text = "DRS ON"
	}

	start := 14.0
	if isPrimary(r) {
		start = 20
	}

	c.SetColor(White)
	size := FitFont(c, text, r.W, start, 9, true, FamilySans)
	m := c.MeasureText(text)
	asc := ascentOr(m, size*0.8)
	c.FillText(text, r.X+(r.W-m.Width)/2, r.Y+r.H/2+asc/2)
}
