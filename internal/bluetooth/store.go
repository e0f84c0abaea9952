package bluetooth

import (
	"sort"
	"sync"
	"time"

	"beacon-radar.klederson.com/internal/beacon"
	"beacon-radar.klederson.com/internal/config"
)

type entry struct {
	Beacon
	history *rssiRing
}

// BeaconStore is a thread-safe store for ranged beacons.
type BeaconStore struct {
	mu         sync.RWMutex
	beacons    map[beacon.ID]*entry
	thresholds beacon.Thresholds
	now        func() time.Time
}

// NewBeaconStore creates an empty store that buckets distances with th.
func NewBeaconStore(th beacon.Thresholds) *BeaconStore {
	return &BeaconStore{
		beacons:    make(map[beacon.ID]*entry),
		thresholds: th,
		now:        time.Now,
	}
}

// Upsert records a sighting. RSSI is smoothed using EMA for known beacons.
// Returns true if the beacon was not tracked before.
func (s *BeaconStore) Upsert(msg BeaconSightedMsg) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := msg.At
	if now.IsZero() {
		now = s.now()
	}
	id := msg.Advertisement.ID
	rssi := float64(msg.RSSI)

	e, ok := s.beacons[id]
	if !ok {
		e = &entry{
			Beacon: Beacon{
				ID:        id,
				RSSI:      rssi,
				FirstSeen: now,
			},
			history: newRSSIRing(config.HistorySize),
		}
		s.beacons[id] = e
	} else if rssi != 0 {
		if e.RSSI == 0 {
			// nothing to smooth against yet
			e.RSSI = rssi
		} else {
			e.RSSI = e.RSSI*(1-config.SmoothingAlpha) + rssi*config.SmoothingAlpha
		}
	}

	e.Address = msg.Address
	e.MeasuredPower = msg.Advertisement.MeasuredPower
	e.LastSeen = now
	e.Distance = beacon.EstimateDistance(e.RSSI, float64(e.MeasuredPower))
	e.Proximity = s.thresholds.Classify(e.Distance)
	e.history.push(e.RSSI)
	return !ok
}

// Evict removes beacons not seen within the timeout and returns their IDs.
func (s *BeaconStore) Evict(timeout time.Duration) []beacon.ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-timeout)
	var gone []beacon.ID
	for id, e := range s.beacons {
		if e.LastSeen.Before(cutoff) {
			delete(s.beacons, id)
			gone = append(gone, id)
		}
	}
	return gone
}

// Snapshot returns copies of all beacons, nearest first.
func (s *BeaconStore) Snapshot() []*Beacon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Beacon, 0, len(s.beacons))
	for _, e := range s.beacons {
		cp := e.Beacon
		cp.History = e.history.values()
		result = append(result, &cp)
	}
	SortNearestFirst(result)
	return result
}

// Count returns the number of tracked beacons.
func (s *BeaconStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.beacons)
}

// SortNearestFirst orders beacons by proximity bucket, then distance, then
// ID so that the order is stable between frames.
func SortNearestFirst(bs []*Beacon) {
	sort.SliceStable(bs, func(i, j int) bool {
		a, b := bs[i], bs[j]
		if ra, rb := a.Proximity.Rank(), b.Proximity.Rank(); ra != rb {
			return ra < rb
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		return a.ID.String() < b.ID.String()
	})
}
