package surface_test

import (
	"math"
	"testing"

	"github.com/Xordas/ScreenX/surface"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		available float64
		density   float64
		want      surface.Size
	}{
		{"within bounds", 512, 1, surface.Size{DisplayWidth: 512, DisplayHeight: 128, BackingWidth: 512, BackingHeight: 128, Density: 1, Scale: 2}},
		{"clamped to max", 2000, 1, surface.Size{DisplayWidth: 820, DisplayHeight: 205, BackingWidth: 820, BackingHeight: 205, Density: 1, Scale: 820.0 / 256}},
		{"clamped to min", 100, 1, surface.Size{DisplayWidth: 320, DisplayHeight: 80, BackingWidth: 320, BackingHeight: 80, Density: 1, Scale: 1.25}},
		{"unknown container", 0, 1, surface.Size{DisplayWidth: 820, DisplayHeight: 205, BackingWidth: 820, BackingHeight: 205, Density: 1, Scale: 820.0 / 256}},
		{"high density", 512, 2, surface.Size{DisplayWidth: 512, DisplayHeight: 128, BackingWidth: 1024, BackingHeight: 256, Density: 2, Scale: 4}},
		{"fractional density", 400, 1.5, surface.Size{DisplayWidth: 400, DisplayHeight: 100, BackingWidth: 600, BackingHeight: 150, Density: 1.5, Scale: 600.0 / 256}},
		{"missing density", 512, 0, surface.Size{DisplayWidth: 512, DisplayHeight: 128, BackingWidth: 512, BackingHeight: 128, Density: 1, Scale: 2}},
		{"not a number density", 512, math.NaN(), surface.Size{DisplayWidth: 512, DisplayHeight: 128, BackingWidth: 512, BackingHeight: 128, Density: 1, Scale: 2}},
		{"infinite density", 512, math.Inf(1), surface.Size{DisplayWidth: 512, DisplayHeight: 128, BackingWidth: 512, BackingHeight: 128, Density: 1, Scale: 2}},
		{"density capped", 820, 40, surface.Size{DisplayWidth: 820, DisplayHeight: 205, BackingWidth: 3280, BackingHeight: 820, Density: 4, Scale: 3280.0 / 256}},
		{"not a number width", math.NaN(), 1, surface.Size{DisplayWidth: 820, DisplayHeight: 205, BackingWidth: 820, BackingHeight: 205, Density: 1, Scale: 820.0 / 256}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := surface.Compute(tt.available, tt.density, surface.DefaultBounds())

			assert.Equal(t, tt.want.DisplayWidth, got.DisplayWidth)
			assert.Equal(t, tt.want.DisplayHeight, got.DisplayHeight)
			assert.Equal(t, tt.want.BackingWidth, got.BackingWidth)
			assert.Equal(t, tt.want.BackingHeight, got.BackingHeight)
			assert.InDelta(t, tt.want.Density, got.Density, 1e-9)
			assert.InDelta(t, tt.want.Scale, got.Scale, 1e-9)
		})
	}
}

func TestComputeKeepsProportions(t *testing.T) {
	for available := 300.0; available <= 900; available += 7 {
		got := surface.Compute(available, 1, surface.DefaultBounds())

		assert.GreaterOrEqual(t, got.DisplayWidth, 320.0)
		assert.LessOrEqual(t, got.DisplayWidth, 820.0)
		assert.InDelta(t, got.DisplayWidth/4, got.DisplayHeight, 0.5)
		assert.InDelta(t, got.DisplayWidth, got.Scale*surface.LogicalWidth, 1e-9)
	}
}

func TestSurfaceResize(t *testing.T) {
	s := surface.New(surface.Bounds{})

	assert.Equal(t, surface.DefaultBounds(), s.Bounds())
	assert.InDelta(t, 820.0, s.Size().DisplayWidth, 1e-9)

	size, changed := s.Resize(640, 2)
	assert.True(t, changed)
	assert.Equal(t, 1280, size.BackingWidth)
	assert.Equal(t, size, s.Size())

	_, changed = s.Resize(640, 2)
	assert.False(t, changed)
}
