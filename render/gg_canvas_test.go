package render_test

import (
	"image"
	"testing"
	"time"

	"github.com/Xordas/ScreenX/layout"
	"github.com/Xordas/ScreenX/model"
	"github.com/Xordas/ScreenX/render"
	"github.com/Xordas/ScreenX/widgets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPixels(t *testing.T, scale float64, elapsed time.Duration) *image.RGBA {
	t.Helper()

	w, h := int(render.LogicalWidth*scale), int(render.LogicalHeight*scale)
	c := render.NewGGCanvas(w, h, scale, render.NewFaceCache())

	newDemoRenderer(layout.Default()).Render(c, elapsed)

	img, ok := c.Image().(*image.RGBA)
	require.True(t, ok)

	return img
}

func TestGGCanvasDeterministic(t *testing.T) {
	for _, scale := range []float64{1, 2, 3.2} {
		a := renderPixels(t, scale, 500*time.Millisecond)
		b := renderPixels(t, scale, 500*time.Millisecond)

		assert.Equal(t, a.Bounds(), b.Bounds())
		assert.Equal(t, a.Pix, b.Pix, "scale %v", scale)
	}
}

func TestGGCanvasDrawsSomething(t *testing.T) {
	img := renderPixels(t, 1, 0)

	assert.Equal(t, image.Rect(0, 0, 256, 64), img.Bounds())

	r, g, b, _ := img.At(255, 63).RGBA()
	assert.Zero(t, r+g+b, "background is black")

	lit := 0
	for y := range 64 {
		if r, _, _, _ := img.At(78, y).RGBA(); r > 0x8000 {
			lit++
		}
	}

	assert.Greater(t, lit, 10, "left separator is drawn")
	assert.Less(t, lit, 64, "left separator is dashed")
}

func TestGGCanvasMeasure(t *testing.T) {
	faces := render.NewFaceCache()

	for _, scale := range []float64{1, 2.5} {
		c := render.NewGGCanvas(10, 10, scale, faces)

		c.SetFont(render.Sans(20, true))
		wide := c.MeasureText("DISCONNECTED")
		narrow := c.MeasureText("N")

		assert.Greater(t, wide.Width, narrow.Width)
		assert.Greater(t, narrow.Ascent, 10.0)
		assert.Less(t, narrow.Ascent, 20.0)
		assert.InDelta(t, 0, c.MeasureText("").Width, 1e-9)

		c.SetFont(render.Sans(10, true))
		assert.InEpsilon(t, wide.Width/2, c.MeasureText("DISCONNECTED").Width, 0.1, "width scales with size")
	}

	assert.Equal(t, 6, faces.Len(), "one face per family, weight and device size")
}

func TestGGCanvasFit(t *testing.T) {
	c := render.NewGGCanvas(256, 64, 1, nil)

	for _, width := range []float64{20, 40, 78, 99} {
		size := render.FitFont(c, "7250", width, 28, 9, true, render.FamilySans)

		assert.GreaterOrEqual(t, size, 9.0)
		assert.LessOrEqual(t, size, 28.0)

		if size > 9 {
			assert.LessOrEqual(t, c.MeasureText("7250").Width, width-4)
		}
	}
}

func TestGGCanvasStatusScreens(t *testing.T) {
	snap := model.DemoSnapshot()
	snap.HeartbeatLost = true

	c := render.NewGGCanvas(256, 64, 1, nil)
	screen := render.NewRenderer(widgets.Default(), staticSource{snap}).Render(c, 0)

	assert.Equal(t, render.ScreenDisconnected, screen)

	lit := 0
	img := c.Image()

	for y := range 64 {
		for x := range 256 {
			if r, _, _, _ := img.At(x, y).RGBA(); r > 0 {
				lit++
			}
		}
	}

	assert.Positive(t, lit)
}
