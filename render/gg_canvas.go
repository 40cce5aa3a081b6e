package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// GGCanvas rasterises a frame with gg. Logical coordinates are multiplied by scale, and
// faces are created at device size so text stays sharp at any density.
type GGCanvas struct {
	dc    *gg.Context
	scale float64
	faces *FaceCache
	font  Font
	saved []Font
}

func NewGGCanvas(width, height int, scale float64, faces *FaceCache) *GGCanvas {
	if faces == nil {
		faces = NewFaceCache()
	}

	if scale <= 0 {
		scale = 1
	}

	c := &GGCanvas{
		dc:    gg.NewContext(width, height),
		scale: scale,
		faces: faces,
	}
	c.dc.SetLineWidth(1)
	c.SetFont(Sans(10, false))

	return c
}

func (c *GGCanvas) Image() image.Image {
	return c.dc.Image()
}

func (c *GGCanvas) Width() int {
	return c.dc.Width()
}

func (c *GGCanvas) Height() int {
	return c.dc.Height()
}

func (c *GGCanvas) Scale() float64 {
	return c.scale
}

func (c *GGCanvas) Clear(col color.Color) {
	c.dc.ResetClip()
	c.dc.SetColor(col)
	c.dc.Clear()
}

func (c *GGCanvas) SetColor(col color.Color) {
	c.dc.SetColor(col)
}

func (c *GGCanvas) SetFont(f Font) {
	c.font = f
	c.dc.SetFontFace(c.face())
}

func (c *GGCanvas) face() font.Face {
	return c.faces.Face(c.font.Family, c.font.Bold, c.font.Size*c.scale)
}

func (c *GGCanvas) MeasureText(s string) TextMetrics {
	bounds, advance := font.BoundString(c.face(), s)

	return TextMetrics{
		Width:   fromFixed(advance) / c.scale,
		Ascent:  -fromFixed(bounds.Min.Y) / c.scale,
		Descent: fromFixed(bounds.Max.Y) / c.scale,
	}
}

func (c *GGCanvas) FillText(s string, x, y float64) {
	c.dc.DrawString(s, x*c.scale, y*c.scale)
}

func (c *GGCanvas) FillRect(x, y, w, h float64) {
	c.dc.DrawRectangle(x*c.scale, y*c.scale, w*c.scale, h*c.scale)
	c.dc.Fill()
}

func (c *GGCanvas) StrokeRect(x, y, w, h float64) {
	c.dc.DrawRectangle(x*c.scale, y*c.scale, w*c.scale, h*c.scale)
	c.dc.Stroke()
}

func (c *GGCanvas) StrokeRoundedRect(x, y, w, h, r float64) {
	c.dc.DrawRoundedRectangle(x*c.scale, y*c.scale, w*c.scale, h*c.scale, r*c.scale)
	c.dc.Stroke()
}

func (c *GGCanvas) DashedLine(x1, y1, x2, y2, on, off float64) {
	c.dc.SetDash(on, off)
	c.dc.DrawLine(x1*c.scale, y1*c.scale, x2*c.scale, y2*c.scale)
	c.dc.Stroke()
	c.dc.SetDash()
}

func (c *GGCanvas) Save() {
	c.dc.Push()
	c.saved = append(c.saved, c.font)
}

func (c *GGCanvas) Restore() {
	if len(c.saved) == 0 {
		return
	}

	c.dc.Pop()
	c.font = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

func (c *GGCanvas) Clip(x, y, w, h float64) {
	c.dc.DrawRectangle(x*c.scale, y*c.scale, w*c.scale, h*c.scale)
	c.dc.Clip()
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
