//go:build !cgo

package window

import (
	"context"
	"errors"

	"github.com/Xordas/ScreenX/preview"
)

var ErrUnsupported = errors.New("window mode requires cgo (build with CGO_ENABLED=1)")

type Option func(*Game)

type Game struct {
	preview *preview.Preview
}

func NewGame(cfg preview.Config, _ ...Option) *Game {
	return &Game{preview: preview.New(nil, cfg)}
}

func (g *Game) Preview() *preview.Preview {
	return g.preview
}

func Run(_ context.Context, _ *Game, _ string) error {
	return ErrUnsupported
}
