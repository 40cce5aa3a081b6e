package db

import (
	"errors"

	"github.com/Xordas/ScreenX/model"
)

var (
	ErrMissingName = errors.New("missing name")
	ErrNotFound    = errors.New("not found")
)

// PresetStore keeps named layouts.
type PresetStore interface {
	SavePreset(l model.Layout) error
	DeletePreset(name string) error
	Preset(name string) (model.Layout, error)
	Presets() ([]model.Layout, error)
}

// LayoutState remembers the layout that was applied last.
type LayoutState interface {
	SaveCurrentLayout(l model.Layout) error
	CurrentLayout() (model.Layout, error)
}

type Storage interface {
	PresetStore
	LayoutState
	Close()
}
