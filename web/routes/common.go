package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Xordas/ScreenX/db"
	"github.com/Xordas/ScreenX/logging"
	"github.com/Xordas/ScreenX/model"
	"github.com/Xordas/ScreenX/render"
	"github.com/Xordas/ScreenX/surface"
	"github.com/Xordas/ScreenX/telemetry"
	"github.com/Xordas/ScreenX/widgets"
	"github.com/a-h/templ"
)

var logCtx = logging.PackageCtx("web")

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Storage db.Storage
	Catalog *widgets.Catalog
	Live    *telemetry.LiveSource
	Bounds  surface.Bounds

	liveView *render.Renderer
	demoView *render.Renderer
	started  time.Time

	// Renders share one face cache.
	renderMu sync.Mutex
	faces    *render.FaceCache
}

type Config struct {
	Storage       db.Storage
	Catalog       *widgets.Catalog
	Live          *telemetry.LiveSource
	Layout        model.Layout
	Bounds        surface.Bounds
	SimulatorName string
}

// NewServerHandler wires a live and a demo renderer showing the same layout.
func NewServerHandler(cfg Config) *ServerHandler {
	if cfg.Catalog == nil {
		cfg.Catalog = widgets.Default()
	}

	if cfg.Live == nil {
		cfg.Live = telemetry.NewLiveSource()
	}

	opts := []render.Option{render.WithLayout(cfg.Layout), render.WithSimulatorName(cfg.SimulatorName)}

	return &ServerHandler{
		Storage:  cfg.Storage,
		Catalog:  cfg.Catalog,
		Live:     cfg.Live,
		Bounds:   cfg.Bounds,
		liveView: render.NewRenderer(cfg.Catalog, cfg.Live, opts...),
		demoView: render.NewRenderer(cfg.Catalog, telemetry.NewDemoSource(), opts...),
		started:  time.Now(),
		faces:    render.NewFaceCache(),
	}
}

// Layout returns the layout both previews currently show.
func (s *ServerHandler) Layout() model.Layout {
	return s.liveView.Layout()
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.ErrorContext(logCtx, "Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

type apiResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.ErrorContext(logCtx, "Could not encode response", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(data); err != nil {
		slog.ErrorContext(logCtx, "Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResult{OK: false, Error: message})
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, apiResult{OK: true})
}

func decodeBody(r *http.Request, out any) error {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	return nil
}
