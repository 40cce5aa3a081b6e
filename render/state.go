package render

import (
	"time"

	"github.com/Xordas/ScreenX/model"
)

type Screen int

const (
	ScreenIdle Screen = iota
	ScreenDisconnected
	ScreenSimulatorNotRunning
	ScreenTelemetry
)

func (s Screen) String() string {
	switch s {
	case ScreenIdle:
		return "idle"
	case ScreenDisconnected:
		return "disconnected"
	case ScreenSimulatorNotRunning:
		return "simulator-not-running"
	case ScreenTelemetry:
		return "telemetry"
	default:
		return "unknown"
	}
}

// SelectScreen decides which screen a frame shows. Earlier checks win.
func SelectScreen(s model.Status) Screen {
	switch {
	case !s.TelemetryRunning:
		return ScreenIdle
	case s.HeartbeatLost:
		return ScreenDisconnected
	case !s.SimulatorRunning:
		return ScreenSimulatorNotRunning
	default:
		return ScreenTelemetry
	}
}

// BlinkPeriod is the length of each on and off phase of an alert.
const BlinkPeriod = 150 * time.Millisecond

// BlinkOn reports whether alerts are shown inverted at elapsed time since start.
func BlinkOn(elapsed time.Duration) bool {
	if elapsed < 0 {
		elapsed = 0
	}

	return (elapsed/BlinkPeriod)%2 == 0
}
