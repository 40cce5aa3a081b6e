package telemetry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Xordas/ScreenX/model"
)

// TelemetryStatus is the companion backend's /api/telemetry/status response.
type TelemetryStatus struct {
	Status string      `json:"status"`
	Last   *LastPacket `json:"last"`
}

// LastPacket is the most recent packet as reported by the backend. Any field may be
// missing or null.
type LastPacket struct {
	SimulatorRunning *bool      `json:"ac_running"`
	Gear             gearValue  `json:"gear"`
	Pit              model.Flag `json:"pit"`
	ABS              model.Flag `json:"abs"`
	TC               model.Flag `json:"tc"`
	DRS              model.Flag `json:"drs"`
	TireDisplayPct   []float64  `json:"Tire_display_pct"`
	Speed            *float64   `json:"speed"`
	RPM              *float64   `json:"rpm"`
	Throttle         *float64   `json:"throttle"`
	Brake            *float64   `json:"brake"`
	Clutch           *float64   `json:"clutch"`
	Fuel             *float64   `json:"fuel"`
	Boost            *float64   `json:"boost"`
	Steer            *float64   `json:"steer"`
	AirTemp          *float64   `json:"air_temp"`
	RoadTemp         *float64   `json:"road_temp"`
	BrakeTemp        *float64   `json:"brake_temp"`
}

// HeartbeatStatus is the companion backend's /api/heartbeat/status response.
type HeartbeatStatus struct {
	Running   bool `json:"running"`
	Connected bool `json:"connected"`
	EverSeen  bool `json:"ever_seen"`
}

// gearValue accepts the gear as a string or as a number.
type gearValue string

func (g *gearValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*g = gearValue(s)

		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("gear must be a string or a number, got %s: %w", data, err)
	}

	*g = gearValue(strconv.FormatFloat(n, 'f', -1, 64))

	return nil
}

func orZero(v *float64) *float64 {
	if v == nil {
		return model.Ptr(0.0)
	}

	return v
}

// Patch converts a telemetry status response into a preview patch. ok is false when the
// response carries no packet.
func (s TelemetryStatus) Patch() (model.Patch, bool) {
	if s.Last == nil {
		return model.Patch{}, false
	}

	d := s.Last

	if d.SimulatorRunning != nil && !*d.SimulatorRunning {
		return model.Patch{
			SimulatorRunning: model.BoolFlag(false),
			TelemetryRunning: model.BoolFlag(true),
		}, true
	}

	tires := model.TirePercents{100, 100, 100, 100}
	if len(d.TireDisplayPct) > 0 {
		copy(tires[:], d.TireDisplayPct)
	}

	pit, abs, tc, drs := d.Pit, d.ABS, d.TC, d.DRS

	return model.Patch{
		Gear:           model.Ptr(string(d.Gear)),
		Pit:            &pit,
		ABS:            &abs,
		TC:             &tc,
		DRS:            &drs,
		TireDisplayPct: &tires,
		Speed:          orZero(d.Speed),
		RPM:            orZero(d.RPM),
		Throttle:       orZero(d.Throttle),
		Brake:          orZero(d.Brake),
		Clutch:         orZero(d.Clutch),
		Fuel:           orZero(d.Fuel),
		Boost:          orZero(d.Boost),
		Steer:          orZero(d.Steer),
		AirTemp:        orZero(d.AirTemp),
		RoadTemp:       orZero(d.RoadTemp),
		BrakeTemp:      orZero(d.BrakeTemp),

		FirstPacketReceived: model.BoolFlag(true),
		TelemetryRunning:    model.BoolFlag(true),
		SimulatorRunning:    model.BoolFlag(true),
	}, true
}

// Patch converts a heartbeat response. The device counts as lost only after it was
// seen at least once.
func (h HeartbeatStatus) Patch() model.Patch {
	return model.Patch{
		HeartbeatLost:    model.BoolFlag(h.Running && h.EverSeen && !h.Connected),
		TelemetryRunning: model.BoolFlag(h.Running),
	}
}
