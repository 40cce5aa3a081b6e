package routes

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/Xordas/ScreenX/render"
	"github.com/Xordas/ScreenX/surface"
	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
)

func queryFloat(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %q: not a finite number", name, raw)
	}

	return v, nil
}

func (s *ServerHandler) renderer(mode string) (*render.Renderer, bool) {
	switch mode {
	case "", "live":
		return s.liveView, true
	case "demo":
		return s.demoView, true
	default:
		return nil, false
	}
}

// RenderPNG draws one frame of the chosen preview and encodes it as PNG.
func (s *ServerHandler) RenderPNG(mode string, size surface.Size, elapsed time.Duration) ([]byte, render.Screen, error) {
	renderer, ok := s.renderer(mode)
	if !ok {
		return nil, render.ScreenIdle, fmt.Errorf("unknown preview mode %q", mode)
	}

	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	canvas := render.NewGGCanvas(size.BackingWidth, size.BackingHeight, size.Scale, s.faces)
	screen := renderer.Render(canvas, elapsed)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas.Image(), imaging.PNG); err != nil {
		return nil, screen, fmt.Errorf("could not encode preview: %w", err)
	}

	return buf.Bytes(), screen, nil
}

// PreviewHandle serves /preview.png?mode=live|demo&width=&density=&elapsed=. Elapsed is in
// milliseconds and defaults to the time since the server started.
func (s *ServerHandler) PreviewHandle(w http.ResponseWriter, r *http.Request) {
	width, err := queryFloat(r, "width", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	density, err := queryFloat(r, "density", 1)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	elapsed := time.Since(s.started)

	if raw := r.URL.Query().Get("elapsed"); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid elapsed %q", raw), http.StatusBadRequest)

			return
		}

		elapsed = time.Duration(ms) * time.Millisecond
	}

	mode := r.URL.Query().Get("mode")
	size := surface.Compute(width, density, s.Bounds)

	data, screen, err := s.RenderPNG(mode, size, elapsed)
	if err != nil {
		slog.WarnContext(logCtx, "Could not render preview", "mode", mode, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	slog.DebugContext(logCtx, "Rendered preview",
		"mode", mode,
		"screen", screen,
		"width", size.BackingWidth,
		"height", size.BackingHeight,
		"size", humanize.Bytes(uint64(len(data))))

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")

	if _, err := w.Write(data); err != nil {
		slog.ErrorContext(logCtx, "Failed to write response", "error", err)
	}
}
