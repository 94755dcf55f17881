// SPDX-License-Identifier: MIT

package converge

import "math"

// Defaults for a Tracker.
const (
	DefaultThreshold = 1e-6
	DefaultStreak    = 25
)

// Option configures a Tracker. Constructors panic on nonsensical values.
type Option func(*Tracker)

// WithThreshold sets the relative-change threshold. Panics unless th is
// finite and > 0.
func WithThreshold(th float64) Option {
	if !(th > 0) || math.IsInf(th, 1) {
		panic("converge: WithThreshold: threshold must be finite and > 0")
	}
	return func(t *Tracker) { t.threshold = th }
}

// WithStreak sets the number of consecutive quiet observations required.
// Panics if n < 1.
func WithStreak(n int) Option {
	if n < 1 {
		panic("converge: WithStreak: streak must be >= 1")
	}
	return func(t *Tracker) { t.need = n }
}

// Tracker is a streak counter over successive energy values.
// The zero value is not usable; construct with New.
type Tracker struct {
	threshold float64
	need      int
	streak    int
	near      bool
}

// New returns a Tracker with DefaultThreshold and DefaultStreak unless
// overridden.
func New(opts ...Option) *Tracker {
	t := &Tracker{threshold: DefaultThreshold, need: DefaultStreak}
	for _, o := range opts {
		o(t)
	}

	return t
}

// RelativeChange returns |next−prev| / max(1, |prev|).
func RelativeChange(prev, next float64) float64 {
	return math.Abs(next-prev) / math.Max(1, math.Abs(prev))
}

// Observe records one transition prev → next and reports whether the
// configuration is now near-converged.
func (t *Tracker) Observe(prev, next float64) bool {
	if RelativeChange(prev, next) < t.threshold {
		t.streak++
	} else {
		t.streak = 0
	}
	t.near = t.streak >= t.need

	return t.near
}

// Streak returns the current count of consecutive quiet observations.
func (t *Tracker) Streak() int { return t.streak }

// NearConverged returns the result of the last Observe.
func (t *Tracker) NearConverged() bool { return t.near }

// Threshold returns the configured relative-change threshold.
func (t *Tracker) Threshold() float64 { return t.threshold }

// Need returns the configured streak length.
func (t *Tracker) Need() int { return t.need }

// Reset clears the streak and the flag.
func (t *Tracker) Reset() {
	t.streak = 0
	t.near = false
}
