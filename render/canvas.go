// Package render draws the 256x64 display frame: zones, widgets and status screens.
package render

import "image/color"

// Logical display size. All drawing coordinates are in this space.
const (
	LogicalWidth  = 256
	LogicalHeight = 64
)

var (
	White = color.White
	Black = color.Black
	Grey  = color.Gray{Y: 0x55}
)

type FontFamily int

const (
	FamilySans FontFamily = iota
	FamilyMono
)

func (f FontFamily) String() string {
	if f == FamilyMono {
		return "mono"
	}

	return "sans"
}

// Font is a face request in logical pixels.
type Font struct {
	Family FontFamily
	Size   float64
	Bold   bool
}

func Sans(size float64, bold bool) Font {
	return Font{Family: FamilySans, Size: size, Bold: bold}
}

func Mono(size float64) Font {
	return Font{Family: FamilyMono, Size: size}
}

// TextMetrics are measured in logical pixels. Ascent and Descent are the ink extents
// above and below the baseline and may be zero for blank strings.
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Canvas is the drawing context a frame is rendered into. Coordinates are logical
// pixels; lines are one device pixel wide and dash lengths are device pixels.
type Canvas interface {
	Clear(c color.Color)
	SetColor(c color.Color)
	SetFont(f Font)
	MeasureText(s string) TextMetrics
	// FillText draws s with its left edge at x and its baseline at y.
	FillText(s string, x, y float64)
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	StrokeRoundedRect(x, y, w, h, r float64)
	DashedLine(x1, y1, x2, y2, on, off float64)
	// Save pushes the clip and font state; Restore pops it.
	Save()
	Restore()
	// Clip intersects the current clip with the rectangle.
	Clip(x, y, w, h float64)
}
