// Package surface computes the on-screen and backing-store size of the preview.
package surface

import (
	"math"
	"sync"
)

const (
	LogicalWidth  = 256
	LogicalHeight = 64

	DefaultMinWidth = 320
	DefaultMaxWidth = 820

	// MaxDensity caps the device pixel ratio used for the backing store.
	MaxDensity = 4
)

// Bounds limits the displayed width.
type Bounds struct {
	MinWidth float64
	MaxWidth float64
}

func DefaultBounds() Bounds {
	return Bounds{MinWidth: DefaultMinWidth, MaxWidth: DefaultMaxWidth}
}

func (b Bounds) normalized() Bounds {
	if b.MinWidth <= 0 {
		b.MinWidth = DefaultMinWidth
	}

	if b.MaxWidth <= 0 {
		b.MaxWidth = DefaultMaxWidth
	}

	if b.MaxWidth < b.MinWidth {
		b.MaxWidth = b.MinWidth
	}

	return b
}

// Size is a computed surface geometry.
type Size struct {
	// Displayed size in device-independent pixels.
	DisplayWidth  float64
	DisplayHeight float64

	// Backing store size in device pixels.
	BackingWidth  int
	BackingHeight int
	Density       float64

	// Scale maps logical coordinates onto the backing store.
	Scale float64
}

func normalizeDensity(density float64) float64 {
	if math.IsNaN(density) || math.IsInf(density, 0) || density <= 0 {
		return 1
	}

	return math.Min(density, MaxDensity)
}

// Compute sizes the surface for the available width and pixel density. A non-positive
// available width means the container is unknown and the maximum width is used. Density
// falls back to 1 when it is not a positive finite number and is capped at MaxDensity.
func Compute(available, density float64, bounds Bounds) Size {
	b := bounds.normalized()
	density = normalizeDensity(density)

	width := b.MaxWidth
	if available > 0 {
		width = math.Max(b.MinWidth, math.Min(b.MaxWidth, available))
	}

	height := math.Round(width * LogicalHeight / LogicalWidth)

	return Size{
		DisplayWidth:  width,
		DisplayHeight: height,
		BackingWidth:  int(math.Round(width * density)),
		BackingHeight: int(math.Round(height * density)),
		Density:       density,
		Scale:         width * density / LogicalWidth,
	}
}

// Surface keeps the current size. Resize and Size may be called from different goroutines.
type Surface struct {
	bounds Bounds

	mu   sync.RWMutex
	size Size
}

func New(bounds Bounds) *Surface {
	return &Surface{bounds: bounds, size: Compute(0, 1, bounds)}
}

// Resize recomputes the size and reports whether it changed.
func (s *Surface) Resize(available, density float64) (Size, bool) {
	next := Compute(available, density, s.bounds)

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := next != s.size
	s.size = next

	return next, changed
}

func (s *Surface) Size() Size {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.size
}

func (s *Surface) Bounds() Bounds {
	return s.bounds.normalized()
}
