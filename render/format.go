package render

import (
	"fmt"
	"math"
	"strconv"
)

// roundHalfUp rounds .5 towards positive infinity, matching the device firmware.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func intText(v float64) string {
	r := roundHalfUp(v)
	if r == 0 {
		r = 0 // drop the sign of negative zero
	}

	return strconv.FormatFloat(r, 'f', 0, 64)
}

func percentText(v float64) string {
	return intText(v) + "%"
}

func degreesText(v float64) string {
	return intText(v) + "°"
}

func boostText(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func steerText(ratio float64) string {
	return percentText(ratio * 100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// clampTextY keeps a baseline inside [top+ascent, bottom-2].
func clampTextY(baseline, ascent, top, bottom float64) float64 {
	return math.Max(top+ascent, math.Min(bottom-2, baseline))
}
