package bluetooth

import (
	"time"

	"beacon-radar.klederson.com/internal/beacon"
)

// Beacon is a tracked iBeacon transmitter.
type Beacon struct {
	ID            beacon.ID
	Address       string
	Name          string // registry label, filled in by the app
	RSSI          float64
	MeasuredPower int8
	Distance      float64 // meters, negative when unknown
	Proximity     beacon.Proximity
	FirstSeen     time.Time
	LastSeen      time.Time
	History       []float64 // smoothed RSSI, oldest first
}

// Observation converts the tracked state into a ranging observation.
func (b *Beacon) Observation() beacon.Observation {
	return beacon.Observation{
		ID:        b.ID,
		Proximity: b.Proximity,
		RSSI:      b.RSSI,
		Distance:  b.Distance,
	}
}

// DisplayName returns the beacon name or its ID if unnamed.
func (b *Beacon) DisplayName() string {
	if b.Name == "" {
		return b.ID.String()
	}
	return b.Name
}
