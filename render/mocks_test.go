package render_test

import (
	"image/color"
	"unicode/utf8"

	"github.com/Xordas/ScreenX/model"
	"github.com/Xordas/ScreenX/render"
)

type drawOp struct {
	Name       string
	Text       string
	X, Y, W, H float64
	On, Off    float64
	Color      color.Color
	Font       render.Font
	Depth      int
	Clipped    render.Rect
	ClipActive bool
}

// RecordingCanvas records every draw call. Text is measured as 0.6 of the font size per
// rune, so results are independent of real fonts.
type RecordingCanvas struct {
	Ops        []drawOp
	Clears     int
	Unbalanced int

	color color.Color
	font  render.Font
	clips []render.Rect
	saved []int
}

func (r *RecordingCanvas) record(op drawOp) {
	op.Color = r.color
	op.Font = r.font
	op.Depth = len(r.saved)

	if len(r.clips) > 0 {
		op.Clipped = r.clips[len(r.clips)-1]
		op.ClipActive = true
	}

	r.Ops = append(r.Ops, op)
}

func (r *RecordingCanvas) Clear(c color.Color) {
	r.Clears++
	r.Ops = nil
	r.color = c
}

func (r *RecordingCanvas) SetColor(c color.Color) { r.color = c }
func (r *RecordingCanvas) SetFont(f render.Font)  { r.font = f }

func (r *RecordingCanvas) MeasureText(s string) render.TextMetrics {
	n := float64(utf8.RuneCountInString(s))
	if n == 0 {
		return render.TextMetrics{}
	}

	return render.TextMetrics{Width: n * r.font.Size * 0.6, Ascent: r.font.Size * 0.7, Descent: r.font.Size * 0.2}
}

func (r *RecordingCanvas) FillText(s string, x, y float64) {
	r.record(drawOp{Name: "text", Text: s, X: x, Y: y})
}

func (r *RecordingCanvas) FillRect(x, y, w, h float64) {
	r.record(drawOp{Name: "fill", X: x, Y: y, W: w, H: h})
}

func (r *RecordingCanvas) StrokeRect(x, y, w, h float64) {
	r.record(drawOp{Name: "stroke", X: x, Y: y, W: w, H: h})
}

func (r *RecordingCanvas) StrokeRoundedRect(x, y, w, h, _ float64) {
	r.record(drawOp{Name: "rounded", X: x, Y: y, W: w, H: h})
}

func (r *RecordingCanvas) DashedLine(x1, y1, x2, y2, on, off float64) {
	r.record(drawOp{Name: "dash", X: x1, Y: y1, W: x2 - x1, H: y2 - y1, On: on, Off: off})
}

func (r *RecordingCanvas) Save() {
	r.saved = append(r.saved, len(r.clips))
}

func (r *RecordingCanvas) Restore() {
	if len(r.saved) == 0 {
		r.Unbalanced++

		return
	}

	r.clips = r.clips[:r.saved[len(r.saved)-1]]
	r.saved = r.saved[:len(r.saved)-1]
}

func (r *RecordingCanvas) Clip(x, y, w, h float64) {
	r.clips = append(r.clips, render.Rect{X: x, Y: y, W: w, H: h})
	r.record(drawOp{Name: "clip", X: x, Y: y, W: w, H: h})
}

func (r *RecordingCanvas) Texts() []string {
	var texts []string

	for _, op := range r.Ops {
		if op.Name == "text" {
			texts = append(texts, op.Text)
		}
	}

	return texts
}

func (r *RecordingCanvas) Find(name string) []drawOp {
	var ops []drawOp

	for _, op := range r.Ops {
		if op.Name == name {
			ops = append(ops, op)
		}
	}

	return ops
}

func (r *RecordingCanvas) Text(s string) (drawOp, bool) {
	for _, op := range r.Ops {
		if op.Name == "text" && op.Text == s {
			return op, true
		}
	}

	return drawOp{}, false
}

type staticSource struct {
	snap model.Snapshot
}

func (s staticSource) Snapshot() model.Snapshot {
	return s.snap
}
