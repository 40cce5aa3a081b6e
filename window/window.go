//go:build cgo

// Package window shows the preview in a resizable desktop window.
package window

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/Xordas/ScreenX/logging"
	"github.com/Xordas/ScreenX/preview"
	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
)

var logCtx = logging.PackageCtx("window")

var errNoFrame = errors.New("nothing to present")

type Option func(*Game)

// WithScaleFactor replaces the monitor lookup used for the pixel density.
func WithScaleFactor(scale func() float64) Option {
	return func(g *Game) {
		g.scaleFactor = scale
	}
}

// WithClock replaces time.Now for frame timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// Game is the ebiten host of a preview. Every Update renders one frame and Draw shows
// the latest one.
type Game struct {
	preview     *preview.Preview
	scaleFactor func() float64
	now         func() time.Time

	mu        sync.Mutex
	frame     *image.NRGBA
	available float64
	density   float64

	texture *ebiten.Image
}

func monitorScale() float64 {
	m := ebiten.Monitor()
	if m == nil {
		return 1
	}

	return m.DeviceScaleFactor()
}

func NewGame(cfg preview.Config, opts ...Option) *Game {
	g := &Game{
		scaleFactor: monitorScale,
		now:         time.Now,
		density:     1,
	}

	for _, opt := range opts {
		opt(g)
	}

	g.preview = preview.New(g, cfg)

	return g
}

func (g *Game) Preview() *preview.Preview {
	return g.preview
}

// Present keeps a copy of the rendered frame for the next Draw.
func (g *Game) Present(frame image.Image) error {
	if frame == nil {
		return errNoFrame
	}

	clone := imaging.Clone(frame)

	g.mu.Lock()
	g.frame = clone
	g.mu.Unlock()

	return nil
}

// Frame returns the last presented frame, or nil before the first one.
func (g *Game) Frame() *image.NRGBA {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.frame
}

func (g *Game) AvailableWidth() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.available
}

func (g *Game) Density() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.density
}

func (g *Game) Update() error {
	g.preview.Tick(g.now())

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.Frame()
	if frame == nil {
		return
	}

	bounds := frame.Bounds()
	if g.texture == nil || g.texture.Bounds().Size() != bounds.Size() {
		if g.texture != nil {
			g.texture.Deallocate()
		}

		g.texture = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	}

	g.texture.WritePixels(frame.Pix)
	screen.DrawImage(g.texture, nil)
}

// Layout tracks the window width and returns the backing store size, so one frame
// pixel maps onto one device pixel.
func (g *Game) Layout(outsideWidth, _ int) (int, int) {
	available := float64(outsideWidth)
	density := g.scaleFactor()

	g.mu.Lock()
	changed := available != g.available || math.Abs(density-g.density) > 1e-9
	g.available = available
	g.density = density
	g.mu.Unlock()

	if changed {
		g.preview.Scheduler().Resized()
	}

	size := g.preview.Size()

	return size.BackingWidth, size.BackingHeight
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func Run(ctx context.Context, g *Game, title string) error {
	defer g.preview.Close()

	size := g.preview.Size()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(size.DisplayWidth), int(size.DisplayHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	slog.InfoContext(logCtx, "Opening preview window",
		"title", title, "width", size.DisplayWidth, "height", size.DisplayHeight)

	err := ebiten.RunGame(&runner{Game: g, ctx: ctx})
	if err != nil {
		return fmt.Errorf("preview window failed: %w", err)
	}

	slog.InfoContext(logCtx, "Preview window closed", "frames", g.preview.Scheduler().Frames())

	return nil
}

type runner struct {
	*Game
	ctx context.Context //nolint:containedctx
}

func (r *runner) Update() error {
	if r.ctx.Err() != nil {
		return ebiten.Termination
	}

	return r.Game.Update()
}
