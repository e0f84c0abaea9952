package radar

import (
	"math"
	"time"

	"beacon-radar.klederson.com/internal/config"
)

// Pulse is a highlight that travels around the indicator edge.
type Pulse struct {
	Angle     float64 // Current angle in radians [0, 2π)
	StartTime time.Time
}

// NewPulse creates a pulse starting at north.
func NewPulse(now time.Time) *Pulse {
	return &Pulse{StartTime: now}
}

// Update advances the pulse angle based on elapsed time.
func (p *Pulse) Update(now time.Time) {
	elapsed := now.Sub(p.StartTime).Seconds()
	rps := float64(config.PulseSpeedRPM) / 60.0
	p.Angle = NormalizeAngle(elapsed * rps * 2 * math.Pi)
}

// Intensity returns the glow [0, 1] for an edge cell at the given angle,
// fading linearly over PulseTrailDeg behind the head.
func (p *Pulse) Intensity(cellAngle float64) float64 {
	behind := NormalizeAngle(p.Angle - cellAngle)
	trail := config.PulseTrailDeg * math.Pi / 180.0
	if behind > trail {
		return 0
	}
	return 1.0 - behind/trail
}
