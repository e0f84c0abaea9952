package beacon

import (
	"math"

	"beacon-radar.klederson.com/internal/config"
)

// Proximity is a coarse distance bucket for a ranged beacon.
type Proximity int

const (
	ProximityUnknown Proximity = iota
	ProximityImmediate
	ProximityNear
	ProximityFar
)

func (p Proximity) String() string {
	switch p {
	case ProximityImmediate:
		return "immediate"
	case ProximityNear:
		return "near"
	case ProximityFar:
		return "far"
	default:
		return "unknown"
	}
}

// Rank orders proximities nearest first; unknown sorts last.
func (p Proximity) Rank() int {
	switch p {
	case ProximityImmediate, ProximityNear, ProximityFar:
		return int(p)
	default:
		return math.MaxInt
	}
}

// Thresholds are the upper distance bounds, in meters, of the immediate and
// near buckets. Anything beyond Near is far.
type Thresholds struct {
	Immediate float64
	Near      float64
}

// ThresholdsFrom builds Thresholds from the runtime config.
func ThresholdsFrom(cfg config.ProximityConfig) Thresholds {
	return Thresholds{Immediate: cfg.ImmediateMeters, Near: cfg.NearMeters}
}

// Classify buckets an estimated distance. A non-positive distance means
// no estimate is available.
func (t Thresholds) Classify(distance float64) Proximity {
	switch {
	case distance <= 0 || math.IsNaN(distance) || math.IsInf(distance, 0):
		return ProximityUnknown
	case distance < t.Immediate:
		return ProximityImmediate
	case distance < t.Near:
		return ProximityNear
	default:
		return ProximityFar
	}
}

// EstimateDistance estimates distance from RSSI using the log-distance path loss model.
// Formula: d = 10^((measuredPower - rssi) / (10 * n))
// Returns -1 when rssi is zero, which receivers report when no reading exists.
func EstimateDistance(rssi, measuredPower float64) float64 {
	if rssi == 0 {
		return -1
	}
	if measuredPower == 0 {
		measuredPower = config.DefaultMeasuredPower
	}
	if rssi > 0 {
		return 0.1
	}
	d := math.Pow(10, (measuredPower-rssi)/(10*config.PathLossExp))
	if d < 0.1 {
		return 0.1
	}
	return d
}
