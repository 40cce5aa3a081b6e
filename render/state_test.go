package render_test

import (
	"testing"
	"time"

	"github.com/Xordas/ScreenX/model"
	"github.com/Xordas/ScreenX/render"
	"github.com/stretchr/testify/assert"
)

func TestSelectScreen(t *testing.T) {
	tests := []struct {
		name   string
		status model.Status
		want   render.Screen
	}{
		{"not running", model.Status{}, render.ScreenIdle},
		{"not running wins over heartbeat", model.Status{HeartbeatLost: true, SimulatorRunning: true}, render.ScreenIdle},
		{"heartbeat lost", model.Status{TelemetryRunning: true, HeartbeatLost: true}, render.ScreenDisconnected},
		{"heartbeat lost wins over simulator", model.Status{TelemetryRunning: true, HeartbeatLost: true, SimulatorRunning: false}, render.ScreenDisconnected},
		{"simulator not running", model.Status{TelemetryRunning: true}, render.ScreenSimulatorNotRunning},
		{"telemetry", model.Status{TelemetryRunning: true, SimulatorRunning: true}, render.ScreenTelemetry},
		{"telemetry before first packet", model.Status{TelemetryRunning: true, SimulatorRunning: true, FirstPacketReceived: false}, render.ScreenTelemetry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.SelectScreen(tt.status))
		})
	}
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "idle", render.ScreenIdle.String())
	assert.Equal(t, "telemetry", render.ScreenTelemetry.String())
	assert.Equal(t, "unknown", render.Screen(42).String())
}

func TestBlinkOn(t *testing.T) {
	for cycle := range 12 {
		start := time.Duration(cycle) * 2 * render.BlinkPeriod

		for _, offset := range []time.Duration{0, time.Millisecond, 149 * time.Millisecond} {
			assert.True(t, render.BlinkOn(start+offset), "cycle %d offset %v", cycle, offset)
			assert.False(t, render.BlinkOn(start+render.BlinkPeriod+offset), "cycle %d offset %v", cycle, offset)
		}
	}

	assert.True(t, render.BlinkOn(-time.Second))
}
