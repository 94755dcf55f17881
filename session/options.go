// SPDX-License-Identifier: MIT

package session

import (
	"math"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/spherelab/converge"
	"github.com/katalvlaran/spherelab/potential"
	"github.com/katalvlaran/spherelab/sphere"
)

// Option configures New. Constructors panic on nonsensical arguments.
type Option func(*Session)

// WithN sets the initial point count, clamped into
// [sphere.MinPoints, sphere.MaxPoints].
func WithN(n int) Option {
	return func(s *Session) { s.n = sphere.ClampN(n) }
}

// WithDim sets the ambient dimension. Panics if d < 2.
func WithDim(d int) Option {
	if d < 2 {
		panic("session: WithDim: dimension must be >= 2")
	}
	return func(s *Session) { s.dim = d }
}

// WithEta sets the step size. Panics unless eta is finite and > 0.
func WithEta(eta float64) Option {
	if !(eta > 0) || math.IsInf(eta, 1) {
		panic("session: WithEta: step size must be finite and > 0")
	}
	return func(s *Session) { s.eta = eta }
}

// WithPotential sets the pair potential. Panics on nil.
func WithPotential(p potential.Potential) Option {
	if p == nil {
		panic("session: WithPotential(nil)")
	}
	return func(s *Session) { s.pot = p }
}

// WithSeed makes every random draw of the session reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Session) { s.src = rand.NewPCG(seed, ^seed) }
}

// WithMaxStepsPerCall caps the k accepted by Advance. Panics if k < 1.
func WithMaxStepsPerCall(k int) Option {
	if k < 1 {
		panic("session: WithMaxStepsPerCall: cap must be >= 1")
	}
	return func(s *Session) { s.maxSteps = k }
}

// WithConvergence passes options to the convergence tracker.
func WithConvergence(opts ...converge.Option) Option {
	return func(s *Session) { s.tracker = converge.New(opts...) }
}

// WithLogger sets the logger; the session adds its session_id field.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}
