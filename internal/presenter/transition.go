package presenter

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/lucasb-eyer/go-colorful"

	"beacon-radar.klederson.com/internal/config"
)

const (
	springFrequency = 6.0
	springDamping   = 0.45 // under-damped so the indicator overshoots a little
	settleEpsilon   = 0.001
)

// Frame is the interpolated presentation for one rendered frame.
type Frame struct {
	State
	Progress float64 // background cross-fade progress in [0, 1]
}

// Transition animates between States: the background cross-fades over a
// fixed duration and the indicator scale follows a spring. Texts switch
// immediately. Not safe for concurrent use.
type Transition struct {
	duration time.Duration
	spring   harmonica.Spring

	target State
	from   colorful.Color
	to     colorful.Color
	start  time.Time

	scale    float64
	velocity float64
}

// NewTransition starts at the given state with no animation pending.
func NewTransition(duration time.Duration, initial State) *Transition {
	c := parseColor(initial.Background)
	return &Transition{
		duration: duration,
		spring:   harmonica.NewSpring(harmonica.FPS(config.TargetFPS), springFrequency, springDamping),
		target:   initial,
		from:     c,
		to:       c,
		scale:    initial.Scale,
	}
}

// Apply sets a new target state. Re-applying the current target is a no-op,
// so ranging passes that report the same proximity do not restart the fade.
func (t *Transition) Apply(s State, now time.Time) {
	if s == t.target {
		return
	}
	if s.Background != t.target.Background {
		t.from = t.blend(now)
		t.to = parseColor(s.Background)
		t.start = now
	}
	t.target = s
}

// Step advances the indicator spring by one frame.
func (t *Transition) Step() {
	t.scale, t.velocity = t.spring.Update(t.scale, t.velocity, t.target.Scale)
}

// Frame returns the presentation to draw at now.
func (t *Transition) Frame(now time.Time) Frame {
	f := Frame{State: t.target, Progress: t.progress(now)}
	f.Scale = math.Max(0, t.scale)
	if f.Progress < 1 {
		f.Background = t.blend(now).Hex()
	}
	return f
}

// Target returns the state being animated towards.
func (t *Transition) Target() State {
	return t.target
}

// Settled reports whether both the fade and the spring have come to rest.
func (t *Transition) Settled(now time.Time) bool {
	return t.progress(now) >= 1 &&
		math.Abs(t.scale-t.target.Scale) < settleEpsilon &&
		math.Abs(t.velocity) < settleEpsilon
}

func (t *Transition) progress(now time.Time) float64 {
	if t.duration <= 0 || t.start.IsZero() {
		return 1
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	return math.Min(1, math.Max(0, p))
}

func (t *Transition) blend(now time.Time) colorful.Color {
	return t.from.BlendLab(t.to, t.progress(now)).Clamped()
}

func parseColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(ColorGray)
	}
	return c
}
