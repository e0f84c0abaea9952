// Package presenter maps ranged beacon proximity to what the screen shows.
package presenter

import (
	"beacon-radar.klederson.com/internal/beacon"
)

// Background colors, matching the platform's stock blue/orange/red/gray.
const (
	ColorBlue   = "#0000FF"
	ColorOrange = "#FF8000"
	ColorRed    = "#FF0000"
	ColorGray   = "#808080"
)

// Status texts.
const (
	StatusFar       = "FAR"
	StatusNear      = "NEAR"
	StatusImmediate = "RIGHT HERE"
	StatusUnknown   = "UNKNOWN"
)

// NoBeaconLabel is the identity label while nothing is in range.
const NoBeaconLabel = "NO BEACON"

// State is everything the proximity panel renders. It is recomputed on every
// ranging pass and never accumulated.
type State struct {
	Proximity  beacon.Proximity
	Background string  // hex color
	Status     string  // large center text
	Scale      float64 // indicator radius relative to the panel
	Identity   string  // beacon name, "Unknown Beacon" or "NO BEACON"
}

// Presenter turns proximity readings into a State.
type Presenter struct {
	registry beacon.Registry
}

// New returns a Presenter that names beacons from registry.
func New(registry beacon.Registry) *Presenter {
	return &Presenter{registry: registry}
}

// Present maps a proximity and an optional beacon identity to a State.
func (p *Presenter) Present(level beacon.Proximity, id *beacon.ID) State {
	s := State{Proximity: level}

	switch level {
	case beacon.ProximityFar:
		s.Background, s.Status, s.Scale = ColorBlue, StatusFar, 0.5
	case beacon.ProximityNear:
		s.Background, s.Status, s.Scale = ColorOrange, StatusNear, 0.8
	case beacon.ProximityImmediate:
		s.Background, s.Status, s.Scale = ColorRed, StatusImmediate, 1.2
	default:
		s.Proximity = beacon.ProximityUnknown
		s.Background, s.Status, s.Scale = ColorGray, StatusUnknown, 0.25
		s.Identity = NoBeaconLabel
		return s
	}

	if id == nil {
		s.Identity = beacon.UnknownLabel
	} else {
		s.Identity = p.registry.Label(id.UUID)
	}
	return s
}

// PresentObservations presents the first observation of a ranging pass.
// Observations must be ordered nearest first; an empty pass is unknown.
func (p *Presenter) PresentObservations(obs []beacon.Observation) State {
	if len(obs) == 0 {
		return p.Present(beacon.ProximityUnknown, nil)
	}
	first := obs[0]
	return p.Present(first.Proximity, &first.ID)
}

// Label names a beacon for alerts and lists.
func (p *Presenter) Label(id beacon.ID) string {
	return p.registry.Label(id.UUID)
}
