// Package preview binds a renderer, a surface and a scheduler to a host drawable.
package preview

import (
	"image"
	"log/slog"
	"reflect"
	"time"

	"github.com/Xordas/ScreenX/layout"
	"github.com/Xordas/ScreenX/logging"
	"github.com/Xordas/ScreenX/model"
	"github.com/Xordas/ScreenX/render"
	"github.com/Xordas/ScreenX/scheduler"
	"github.com/Xordas/ScreenX/surface"
	"github.com/Xordas/ScreenX/telemetry"
	"github.com/Xordas/ScreenX/widgets"
)

var logCtx = logging.PackageCtx("preview")

// Host receives finished frames. The image is reused for the next frame, so hosts
// must copy what they keep.
type Host interface {
	Present(frame image.Image) error
}

// Sizer is implemented by hosts that know their available width and pixel density.
type Sizer interface {
	AvailableWidth() float64
	Density() float64
}

type Config struct {
	Catalog       *widgets.Catalog
	Source        render.DataSource
	Layout        *model.Layout
	Bounds        surface.Bounds
	SimulatorName string
	Clock         func() time.Time
}

// Preview renders frames for one host. A Preview created without a host is inert:
// every method is a no-op.
type Preview struct {
	host     Host
	source   render.DataSource
	renderer *render.Renderer
	surface  *surface.Surface
	sched    *scheduler.Scheduler
	faces    *render.FaceCache

	canvas     *render.GGCanvas
	canvasSize surface.Size
	lastScreen render.Screen
}

// isNil also catches a nil pointer stored in a non-nil Host.
func isNil(host Host) bool {
	if host == nil {
		return true
	}

	v := reflect.ValueOf(host)

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func New(host Host, cfg Config) *Preview {
	if isNil(host) {
		slog.WarnContext(logCtx, "No host to draw on, preview disabled")

		return &Preview{}
	}

	if cfg.Catalog == nil {
		cfg.Catalog = widgets.Default()
	}

	if cfg.Source == nil {
		cfg.Source = telemetry.NewLiveSource()
	}

	l := layout.Default()
	if cfg.Layout != nil {
		l = *cfg.Layout
	}

	renderer := render.NewRenderer(cfg.Catalog, cfg.Source,
		render.WithLayout(l), render.WithSimulatorName(cfg.SimulatorName))

	p := &Preview{
		host:       host,
		source:     cfg.Source,
		renderer:   renderer,
		surface:    surface.New(cfg.Bounds),
		faces:      render.NewFaceCache(),
		lastScreen: -1,
	}

	var opts []scheduler.Option
	if cfg.Clock != nil {
		opts = append(opts, scheduler.WithClock(cfg.Clock))
	}

	p.sched = scheduler.New(p.frame, p.syncSize, opts...)
	p.syncSize()

	return p
}

func (p *Preview) inert() bool {
	return p == nil || p.host == nil
}

// Update merges patch into the data source if it accepts updates.
func (p *Preview) Update(patch model.Patch) {
	if p.inert() {
		return
	}

	if u, ok := p.source.(telemetry.Updater); ok {
		u.Update(patch)
	}
}

func (p *Preview) SetLayout(l model.Layout) {
	if p.inert() {
		return
	}

	p.renderer.SetLayout(l)
}

func (p *Preview) Layout() model.Layout {
	if p.inert() {
		return model.Layout{}
	}

	return p.renderer.Layout()
}

// Resize sizes the surface explicitly, for hosts that do not implement Sizer.
func (p *Preview) Resize(available, density float64) surface.Size {
	if p.inert() {
		return surface.Size{}
	}

	size, changed := p.surface.Resize(available, density)
	if changed {
		slog.DebugContext(logCtx, "Surface resized",
			"width", size.DisplayWidth, "height", size.DisplayHeight, "scale", size.Scale)
	}

	return size
}

func (p *Preview) Size() surface.Size {
	if p.inert() {
		return surface.Size{}
	}

	return p.surface.Size()
}

// Scheduler exposes the frame loop so hosts can drive Tick and Resized or call Run.
func (p *Preview) Scheduler() *scheduler.Scheduler {
	if p.inert() {
		return nil
	}

	return p.sched
}

// Tick renders the frame for now.
func (p *Preview) Tick(now time.Time) {
	if p.inert() {
		return
	}

	p.sched.Tick(now)
}

// Close stops the scheduler and releases its registrations.
func (p *Preview) Close() {
	if p.inert() {
		return
	}

	p.sched.Stop()
}

func (p *Preview) syncSize() {
	sizer, ok := p.host.(Sizer)
	if !ok {
		return
	}

	p.Resize(sizer.AvailableWidth(), sizer.Density())
}

func (p *Preview) frame(elapsed time.Duration) {
	size := p.surface.Size()

	if p.canvas == nil || size != p.canvasSize {
		p.canvas = render.NewGGCanvas(size.BackingWidth, size.BackingHeight, size.Scale, p.faces)
		p.canvasSize = size
	}

	screen := p.renderer.Render(p.canvas, elapsed)
	if screen != p.lastScreen {
		slog.InfoContext(logCtx, "Showing screen", "screen", screen)
		p.lastScreen = screen
	}

	if err := p.host.Present(p.canvas.Image()); err != nil {
		slog.ErrorContext(logCtx, "Could not present frame", "error", err)
	}
}
