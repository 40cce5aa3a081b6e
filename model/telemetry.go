package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TirePercents holds display percentages in FL, FR, RL, RR order.
type TirePercents [4]float64

// UnmarshalJSON accepts arrays of any length. Missing tires read as 100%, extra entries
// are ignored.
func (t *TirePercents) UnmarshalJSON(data []byte) error {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("tire percentages must be an array of numbers: %w", err)
	}

	if values == nil {
		return nil
	}

	*t = TirePercents{100, 100, 100, 100}
	copy(t[:], values)

	return nil
}

// Status carries the flags that decide which screen is shown.
type Status struct {
	TelemetryRunning    bool `json:"telemetryRunning"`
	HeartbeatLost       bool `json:"heartbeatLost"`
	SimulatorRunning    bool `json:"simulatorRunning"`
	FirstPacketReceived bool `json:"firstPacketReceived"`
}

// Snapshot is the full set of values a frame is rendered from.
type Snapshot struct {
	Gear           string       `json:"gear"`
	Speed          float64      `json:"speed"`
	RPM            float64      `json:"rpm"`
	Throttle       float64      `json:"throttle"`
	Brake          float64      `json:"brake"`
	Clutch         float64      `json:"clutch"`
	Fuel           float64      `json:"fuel"`
	Boost          float64      `json:"boost"`
	AirTemp        float64      `json:"airTemp"`
	RoadTemp       float64      `json:"roadTemp"`
	BrakeTemp      float64      `json:"brakeTemp"`
	Steer          float64      `json:"steer"`
	Pit            bool         `json:"pit"`
	ABS            bool         `json:"abs"`
	TC             bool         `json:"tc"`
	DRS            bool         `json:"drs"`
	TireDisplayPct TirePercents `json:"tireDisplayPct"`

	Status
}

// DefaultSnapshot is the state before any telemetry has been received.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Gear:           "N",
		TireDisplayPct: TirePercents{100, 100, 100, 100},
		Status: Status{
			SimulatorRunning: true,
		},
	}
}

// DemoSnapshot is a fixed set of plausible values used to preview layouts.
func DemoSnapshot() Snapshot {
	return Snapshot{
		Gear:           "3",
		Speed:          142,
		RPM:            7250,
		Throttle:       78,
		Brake:          0,
		Fuel:           64.2,
		Boost:          1.2,
		AirTemp:        24,
		RoadTemp:       32,
		Steer:          -0.12,
		BrakeTemp:      420,
		TireDisplayPct: TirePercents{85, 82, 70, 72},
		Status: Status{
			TelemetryRunning:    true,
			SimulatorRunning:    true,
			FirstPacketReceived: true,
		},
	}
}

// Flag is a boolean that also accepts JSON numbers, where zero is false.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch string(data) {
	case "null":
		return nil
	case "true":
		*f = true

		return nil
	case "false":
		*f = false

		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flag must be a boolean or a number, got %s: %w", data, err)
	}

	*f = n != 0

	return nil
}

// BoolFlag returns a pointer usable in a Patch.
func BoolFlag(v bool) *Flag {
	f := Flag(v)

	return &f
}

// Patch is a partial update. Nil fields leave the snapshot untouched.
type Patch struct {
	Gear           *string       `json:"gear,omitempty"`
	Speed          *float64      `json:"speed,omitempty"`
	RPM            *float64      `json:"rpm,omitempty"`
	Throttle       *float64      `json:"throttle,omitempty"`
	Brake          *float64      `json:"brake,omitempty"`
	Clutch         *float64      `json:"clutch,omitempty"`
	Fuel           *float64      `json:"fuel,omitempty"`
	Boost          *float64      `json:"boost,omitempty"`
	AirTemp        *float64      `json:"airTemp,omitempty"`
	RoadTemp       *float64      `json:"roadTemp,omitempty"`
	BrakeTemp      *float64      `json:"brakeTemp,omitempty"`
	Steer          *float64      `json:"steer,omitempty"`
	Pit            *Flag         `json:"pit,omitempty"`
	ABS            *Flag         `json:"abs,omitempty"`
	TC             *Flag         `json:"tc,omitempty"`
	DRS            *Flag         `json:"drs,omitempty"`
	TireDisplayPct *TirePercents `json:"tireDisplayPct,omitempty"`

	TelemetryRunning    *Flag `json:"telemetryRunning,omitempty"`
	HeartbeatLost       *Flag `json:"heartbeatLost,omitempty"`
	SimulatorRunning    *Flag `json:"simulatorRunning,omitempty"`
	FirstPacketReceived *Flag `json:"firstPacketReceived,omitempty"`
}

// Apply merges p into a copy of s.
func (s Snapshot) Apply(p Patch) Snapshot {
	set(&s.Gear, p.Gear)
	set(&s.Speed, p.Speed)
	set(&s.RPM, p.RPM)
	set(&s.Throttle, p.Throttle)
	set(&s.Brake, p.Brake)
	set(&s.Clutch, p.Clutch)
	set(&s.Fuel, p.Fuel)
	set(&s.Boost, p.Boost)
	set(&s.AirTemp, p.AirTemp)
	set(&s.RoadTemp, p.RoadTemp)
	set(&s.BrakeTemp, p.BrakeTemp)
	set(&s.Steer, p.Steer)
	set(&s.TireDisplayPct, p.TireDisplayPct)

	setFlag(&s.Pit, p.Pit)
	setFlag(&s.ABS, p.ABS)
	setFlag(&s.TC, p.TC)
	setFlag(&s.DRS, p.DRS)
	setFlag(&s.TelemetryRunning, p.TelemetryRunning)
	setFlag(&s.HeartbeatLost, p.HeartbeatLost)
	setFlag(&s.SimulatorRunning, p.SimulatorRunning)
	setFlag(&s.FirstPacketReceived, p.FirstPacketReceived)

	return s
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setFlag(dst *bool, v *Flag) {
	if v != nil {
		*dst = bool(*v)
	}
}

// Ptr is a helper for building patches in code.
func Ptr[T any](v T) *T {
	return &v
}
