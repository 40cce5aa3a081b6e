package render

import (
	"log/slog"
	"sync"
	"time"

	"github.com/Xordas/ScreenX/model"
	"github.com/Xordas/ScreenX/widgets"
)

// DataSource supplies the values for one frame.
type DataSource interface {
	Snapshot() model.Snapshot
}

type Option func(*Renderer)

// WithSimulatorName sets the name shown when the simulator is not running.
func WithSimulatorName(name string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.simulatorName = name
		}
	}
}

func WithLayout(l model.Layout) Option {
	return func(r *Renderer) {
		r.layout = l
	}
}

// Renderer draws complete frames from a layout and a data source. Layout changes may
// come from any goroutine; Render itself is expected to run on one goroutine at a time.
type Renderer struct {
	catalog       *widgets.Catalog
	source        DataSource
	simulatorName string

	mu     sync.RWMutex
	layout model.Layout
}

// NewRenderer creates a renderer. A nil source renders the default snapshot.
func NewRenderer(catalog *widgets.Catalog, source DataSource, opts ...Option) *Renderer {
	r := &Renderer{
		catalog:       catalog,
		source:        source,
		simulatorName: DefaultSimulatorName,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// SetLayout replaces the layout used from the next frame on.
func (r *Renderer) SetLayout(l model.Layout) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.layout = l
}

func (r *Renderer) Layout() model.Layout {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.layout
}

func (r *Renderer) Catalog() *widgets.Catalog {
	return r.catalog
}

func (r *Renderer) snapshot() model.Snapshot {
	if r.source == nil {
		return model.DefaultSnapshot()
	}

	return r.source.Snapshot()
}

// Render clears c and draws one frame for the given time since start. It returns the
// screen that was drawn.
func (r *Renderer) Render(c Canvas, elapsed time.Duration) Screen {
	snap := r.snapshot()
	screen := SelectScreen(snap.Status)

	c.Clear(Black)

	switch screen {
	case ScreenIdle:
		drawIdle(c)
	case ScreenDisconnected:
		drawDisconnected(c)
	case ScreenSimulatorNotRunning:
		drawSimulatorNotRunning(c, r.simulatorName)
	case ScreenTelemetry:
		r.drawTelemetry(c, &frameState{snap: snap, blinkOn: BlinkOn(elapsed)})
	}

	return screen
}

func (r *Renderer) drawTelemetry(c Canvas, f *frameState) {
	l := r.Layout()

	drawSeparators(c)

	for _, zone := range Zones() {
		cfg, _ := l.Zone(zone.Name)

		c.Save()
		c.Clip(zone.Bounds.X, zone.Bounds.Y, zone.Bounds.W, zone.Bounds.H)

		primary, secondary, split := SplitZone(zone.Bounds, cfg)
		r.drawWidget(c, cfg.Primary, primary, f)

		if split {
			r.drawWidget(c, cfg.Secondary, secondary, f)
			drawSplitRule(c, zone.Bounds)
		}

		c.Restore()
	}
}

func (r *Renderer) drawWidget(c Canvas, kind model.WidgetKind, region Region, f *frameState) {
	if kind.IsNone() {
		return
	}

	draw, ok := drawers[kind]
	if !ok || !r.catalog.Has(kind) {
		slog.DebugContext(logCtx, "Skipping unknown widget", "kind", kind)

		return
	}

	draw(c, region, f)
}
