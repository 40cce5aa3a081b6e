package routes_test

import (
	"fmt"
	"slices"

	"github.com/Xordas/ScreenX/db"
	"github.com/Xordas/ScreenX/model"
)

// StorageMock is a simple manual mock implementation of the Storage interface
type StorageMock struct {
	Saved       []model.Layout
	Current     *model.Layout
	ReturnError error
	CallCount   int
}

func (m *StorageMock) SavePreset(l model.Layout) error {
	m.CallCount++

	if m.ReturnError != nil {
		return m.ReturnError
	}

	if l.Name == "" {
		return db.ErrMissingName
	}

	m.Saved = slices.DeleteFunc(m.Saved, func(p model.Layout) bool { return p.Name == l.Name })
	m.Saved = append(m.Saved, l)

	return nil
}

func (m *StorageMock) DeletePreset(name string) error {
	m.CallCount++

	if m.ReturnError != nil {
		return m.ReturnError
	}

	if name == "" {
		return db.ErrMissingName
	}

	m.Saved = slices.DeleteFunc(m.Saved, func(p model.Layout) bool { return p.Name == name })

	return nil
}

func (m *StorageMock) Preset(name string) (model.Layout, error) {
	m.CallCount++

	for _, p := range m.Saved {
		if p.Name == name {
			return p, nil
		}
	}

	return model.Layout{}, fmt.Errorf("preset %q: %w", name, db.ErrNotFound)
}

func (m *StorageMock) Presets() ([]model.Layout, error) {
	m.CallCount++

	return m.Saved, m.ReturnError
}

func (m *StorageMock) SaveCurrentLayout(l model.Layout) error {
	m.CallCount++

	if m.ReturnError != nil {
		return m.ReturnError
	}

	m.Current = &l

	return nil
}

func (m *StorageMock) CurrentLayout() (model.Layout, error) {
	m.CallCount++

	if m.ReturnError != nil {
		return model.Layout{}, m.ReturnError
	}

	if m.Current == nil {
		return model.Layout{}, db.ErrNotFound
	}

	return *m.Current, nil
}

// Implement Close method required by db.Storage interface
func (m *StorageMock) Close() {
	// No-op for testing
}
