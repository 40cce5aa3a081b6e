// Package telemetry provides the data sources a preview renders from.
package telemetry

import (
	"sync"

	"github.com/Xordas/ScreenX/model"
)

// Updater accepts partial telemetry updates.
type Updater interface {
	Update(patch model.Patch)
}

// StaticSource always returns the same snapshot.
type StaticSource struct {
	snap model.Snapshot
}

func NewStaticSource(snap model.Snapshot) *StaticSource {
	return &StaticSource{snap: snap}
}

// NewDemoSource returns a source with fixed illustrative values, used to preview layouts.
func NewDemoSource() *StaticSource {
	return NewStaticSource(model.DemoSnapshot())
}

func (s *StaticSource) Snapshot() model.Snapshot {
	return s.snap
}

// LiveSource holds the latest telemetry. Each patch is applied as a single step, so a
// reader never sees half of an update.
type LiveSource struct {
	mu      sync.RWMutex
	snap    model.Snapshot
	updates int
}

func NewLiveSource() *LiveSource {
	return &LiveSource{snap: model.DefaultSnapshot()}
}

// Update merges patch into the current snapshot. When telemetry stops running, the
// values go back to their defaults and only the status flags are kept.
func (s *LiveSource) Update(patch model.Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Apply(patch)

	if s.snap.TelemetryRunning && !next.TelemetryRunning {
		status := next.Status
		next = model.DefaultSnapshot()
		next.Status = status
	}

	s.snap = next
	s.updates++
}

func (s *LiveSource) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snap
}

// Updates returns how many patches have been applied.
func (s *LiveSource) Updates() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.updates
}
