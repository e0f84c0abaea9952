package bluetooth

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"beacon-radar.klederson.com/internal/beacon"
	"beacon-radar.klederson.com/internal/config"
)

const (
	mockInterval     = 200 * time.Millisecond
	mockMinDistance  = 0.2  // meters
	mockMaxDistance  = 12.0 // meters
	mockToggleChance = 0.004
)

type mockBeacon struct {
	address string
	adv     beacon.Advertisement
	period  float64 // seconds per approach/retreat cycle
	phase   float64
	active  bool
}

// MockScanner simulates beacons walking in and out of range for demo mode.
type MockScanner struct {
	mu      sync.Mutex
	sender  Sender
	beacons []mockBeacon
	rnd     *rand.Rand
	cancel  context.CancelFunc
	elapsed float64
}

// NewMockScanner simulates the given beacons plus one beacon that is not
// in any registry.
func NewMockScanner(ids []beacon.ID, rnd *rand.Rand) *MockScanner {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	stranger := beacon.ID{UUID: uuid.New(), Major: uint16(rnd.Intn(1000)), Minor: uint16(rnd.Intn(1000))}
	all := append(append([]beacon.ID(nil), ids...), stranger)

	beacons := make([]mockBeacon, len(all))
	for i, id := range all {
		beacons[i] = mockBeacon{
			address: randomMAC(rnd),
			adv: beacon.Advertisement{
				ID:            id,
				MeasuredPower: int8(config.DefaultMeasuredPower),
			},
			period: 20 + rnd.Float64()*25,
			phase:  rnd.Float64() * 2 * math.Pi,
			active: true,
		}
	}
	return &MockScanner{beacons: beacons, rnd: rnd}
}

// Start begins emitting sightings.
func (s *MockScanner) Start(sender Sender) error {
	s.sender = sender

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)
	return nil
}

func (s *MockScanner) loop(ctx context.Context) {
	ticker := time.NewTicker(mockInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.emit(mockInterval.Seconds(), now)
		}
	}
}

// emit advances the simulation by dt seconds and sends one sighting per
// active beacon.
func (s *MockScanner) emit(dt float64, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.elapsed += dt
	for i := range s.beacons {
		b := &s.beacons[i]

		if s.rnd.Float64() < mockToggleChance {
			b.active = !b.active
		}
		if !b.active {
			continue
		}

		// Cosine walk between max and min distance, log-scaled so each
		// proximity band gets a fair share of the cycle.
		w := (1 + math.Cos(2*math.Pi*s.elapsed/b.period+b.phase)) / 2
		logD := math.Log10(mockMinDistance) + w*(math.Log10(mockMaxDistance)-math.Log10(mockMinDistance))
		rssi := float64(b.adv.MeasuredPower) - 10*config.PathLossExp*logD + (s.rnd.Float64()-0.5)*3

		s.sender.Send(BeaconSightedMsg{
			Address:       b.address,
			Advertisement: b.adv,
			RSSI:          int16(math.Round(rssi)),
			At:            now,
		})
	}
}

// Stop halts the mock scanner.
func (s *MockScanner) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

func randomMAC(rnd *rand.Rand) string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = byte(rnd.Intn(256))
	}
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", b[0], b[1], b[2], b[3], b[4], b[5])
}
