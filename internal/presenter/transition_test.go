package presenter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"beacon-radar.klederson.com/internal/beacon"
)

func TestTransitionCrossFade(t *testing.T) {
	p := New(fixtureRegistry())
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tr := NewTransition(time.Second, p.Present(beacon.ProximityUnknown, nil))

	f := tr.Frame(start)
	assert.Equal(t, ColorGray, f.Background)
	assert.Equal(t, 1.0, f.Progress)

	red := p.Present(beacon.ProximityImmediate, &beacon.ID{UUID: airLocate})
	tr.Apply(red, start)

	f = tr.Frame(start)
	assert.Equal(t, "RIGHT HERE", f.Status, "texts switch immediately")
	assert.Equal(t, "Apple AirLocate", f.Identity)
	assert.Equal(t, 0.0, f.Progress)
	assert.Equal(t, "#808080", strings.ToUpper(f.Background))

	mid := tr.Frame(start.Add(500 * time.Millisecond))
	assert.InDelta(t, 0.5, mid.Progress, 1e-9)
	assert.NotEqual(t, ColorGray, strings.ToUpper(mid.Background))
	assert.NotEqual(t, ColorRed, strings.ToUpper(mid.Background))

	end := tr.Frame(start.Add(time.Second))
	assert.Equal(t, ColorRed, end.Background)
	assert.Equal(t, 1.0, end.Progress)
}

func TestTransitionReapplyDoesNotRestart(t *testing.T) {
	p := New(fixtureRegistry())
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tr := NewTransition(time.Second, p.Present(beacon.ProximityUnknown, nil))

	far := p.Present(beacon.ProximityFar, &beacon.ID{UUID: airLocate})
	tr.Apply(far, start)
	tr.Apply(far, start.Add(900*time.Millisecond))

	assert.Equal(t, 1.0, tr.Frame(start.Add(time.Second)).Progress)
	assert.Equal(t, far, tr.Target())
}

func TestTransitionSpringSettles(t *testing.T) {
	p := New(fixtureRegistry())
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tr := NewTransition(time.Second, p.Present(beacon.ProximityUnknown, nil))
	tr.Apply(p.Present(beacon.ProximityImmediate, nil), start)

	assert.Equal(t, 0.25, tr.Frame(start).Scale)

	overshoot := false
	for i := 0; i < 300; i++ {
		tr.Step()
		if tr.Frame(start).Scale > 1.2 {
			overshoot = true
		}
	}
	assert.True(t, overshoot, "spring should overshoot its target")
	assert.InDelta(t, 1.2, tr.Frame(start).Scale, 0.01)
	assert.True(t, tr.Settled(start.Add(2*time.Second)))
	assert.False(t, tr.Settled(start.Add(100*time.Millisecond)))
}

func TestTransitionZeroDurationIsInstant(t *testing.T) {
	p := New(fixtureRegistry())
	now := time.Now()
	tr := NewTransition(0, p.Present(beacon.ProximityUnknown, nil))
	tr.Apply(p.Present(beacon.ProximityNear, nil), now)
	assert.Equal(t, ColorOrange, tr.Frame(now).Background)
}
