package bluetooth

import (
	"sync"

	"beacon-radar.klederson.com/internal/beacon"
)

// RegionEvent reports a region boundary crossing.
type RegionEvent struct {
	Region  beacon.Region
	Beacon  beacon.ID // beacon that triggered an entry; zero on exit
	Entered bool
}

// RegionMonitor tracks which monitored regions currently contain a beacon.
type RegionMonitor struct {
	mu      sync.Mutex
	regions []beacon.Region
	inside  map[string]bool
}

// NewRegionMonitor creates a monitor with no regions.
func NewRegionMonitor() *RegionMonitor {
	return &RegionMonitor{inside: make(map[string]bool)}
}

// StartMonitoring adds a region. A region with the same identifier is replaced.
func (m *RegionMonitor) StartMonitoring(r beacon.Region) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.regions {
		if existing.Identifier == r.Identifier {
			m.regions[i] = r
			return
		}
	}
	m.regions = append(m.regions, r)
}

// StopMonitoring removes a region and forgets whether it was occupied.
func (m *RegionMonitor) StopMonitoring(identifier string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.regions {
		if r.Identifier == identifier {
			m.regions = append(m.regions[:i], m.regions[i+1:]...)
			break
		}
	}
	delete(m.inside, identifier)
}

// StopAll removes every region.
func (m *RegionMonitor) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regions = nil
	m.inside = make(map[string]bool)
}

// Regions returns the monitored regions.
func (m *RegionMonitor) Regions() []beacon.Region {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]beacon.Region(nil), m.regions...)
}

// Observe records a sighting and returns an entry event for every region the
// beacon moves into.
func (m *RegionMonitor) Observe(id beacon.ID) []RegionEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	var events []RegionEvent
	for _, r := range m.regions {
		if m.inside[r.Identifier] || !r.Constraint.Matches(id) {
			continue
		}
		m.inside[r.Identifier] = true
		events = append(events, RegionEvent{Region: r, Beacon: id, Entered: true})
	}
	return events
}

// Reconcile returns an exit event for every occupied region that no longer
// matches any of the present beacons.
func (m *RegionMonitor) Reconcile(present []beacon.ID) []RegionEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	var events []RegionEvent
	for _, r := range m.regions {
		if !m.inside[r.Identifier] {
			continue
		}
		occupied := false
		for _, id := range present {
			if r.Constraint.Matches(id) {
				occupied = true
				break
			}
		}
		if !occupied {
			m.inside[r.Identifier] = false
			events = append(events, RegionEvent{Region: r})
		}
	}
	return events
}

// Ranger produces observations for beacons satisfying its constraints.
type Ranger struct {
	mu          sync.Mutex
	constraints []beacon.Constraint
	all         bool
}

// SetRangeAll makes an active ranger report every beacon heard, matched or not.
func (r *Ranger) SetRangeAll(all bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = all
}

// StartRanging adds a constraint.
func (r *Ranger) StartRanging(c beacon.Constraint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.constraints {
		if existing.String() == c.String() {
			return
		}
	}
	r.constraints = append(r.constraints, c)
}

// StopRanging removes a constraint.
func (r *Ranger) StopRanging(c beacon.Constraint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.constraints {
		if existing.String() == c.String() {
			r.constraints = append(r.constraints[:i], r.constraints[i+1:]...)
			return
		}
	}
}

// StopAll removes every constraint.
func (r *Ranger) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constraints = nil
}

// Active reports whether any constraint is being ranged.
func (r *Ranger) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.constraints) > 0
}

// Range filters a snapshot down to beacons satisfying any constraint.
// The snapshot order (nearest first) is preserved.
func (r *Ranger) Range(snapshot []*Beacon) []beacon.Observation {
	r.mu.Lock()
	defer r.mu.Unlock()

	var obs []beacon.Observation
	for _, b := range snapshot {
		if r.all && len(r.constraints) > 0 {
			obs = append(obs, b.Observation())
			continue
		}
		for _, c := range r.constraints {
			if c.Matches(b.ID) {
				obs = append(obs, b.Observation())
				break
			}
		}
	}
	return obs
}
