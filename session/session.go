// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/spherelab/converge"
	"github.com/katalvlaran/spherelab/internal/metrics"
	"github.com/katalvlaran/spherelab/optim"
	"github.com/katalvlaran/spherelab/potential"
	"github.com/katalvlaran/spherelab/sphere"
	"github.com/katalvlaran/spherelab/vec"
)

// Session is one interactive optimisation. Construct with New.
type Session struct {
	mu sync.RWMutex

	id       string
	n        int
	dim      int
	eta      float64
	pot      potential.Potential
	maxSteps int
	src      rand.Source
	log      zerolog.Logger

	points   sphere.PointSet
	step     int
	metrics  optim.Metrics
	tracker  *converge.Tracker
	history  []HistoryPoint
	revision uint64
}

// New creates a session with random points and metrics computed at step 0.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		id:       newID(),
		n:        DefaultN,
		dim:      DefaultDim,
		eta:      DefaultEta,
		pot:      potential.Riesz{S: 1},
		maxSteps: DefaultMaxStepsPerCall,
		log:      log.Logger,
	}
	for _, o := range opts {
		o(s)
	}
	if s.src == nil {
		now := uint64(time.Now().UnixNano())
		s.src = rand.NewPCG(now, now>>1)
	}
	if s.tracker == nil {
		s.tracker = converge.New()
	}
	s.log = s.log.With().Str("session_id", s.id).Logger()

	if err := s.resample(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	s.log.Info().Int("n", s.n).Int("dim", s.dim).Stringer("potential", s.pot).Msg("session created")

	return s, nil
}

// newID prefers a time-ordered v7 UUID and falls back to v4.
func newID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}

	return uuid.New().String()
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Revision returns the counter bumped on every change of points or potential.
func (s *Session) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.revision
}

// Randomize draws fresh points for the current N and resets the step
// counter, history and convergence streak.
func (s *Session) Randomize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.resample(); err != nil {
		return err
	}
	s.log.Info().Int("n", s.n).Msg("randomized")

	return nil
}

// SetN clamps n into [sphere.MinPoints, sphere.MaxPoints] and resamples.
// It returns the N actually used.
func (s *Session) SetN(n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.n = sphere.ClampN(n)
	if err := s.resample(); err != nil {
		return 0, err
	}
	s.log.Info().Int("requested", n).Int("n", s.n).Msg("point count changed")

	return s.n, nil
}

// SetEta changes the step size; it must be finite and > 0.
func (s *Session) SetEta(eta float64) error {
	if !(eta > 0) || math.IsInf(eta, 1) {
		return fmt.Errorf("%s: eta=%g: %w", methodSetEta, eta, optim.ErrBadStepSize)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eta = eta

	return nil
}

// SetPotential switches the potential, recomputes the metrics and restarts
// the history at the current step.
func (s *Session) SetPotential(p potential.Potential) error {
	if p == nil {
		return fmt.Errorf("%s: %w", methodSetPotential, optim.ErrNilPotential)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := optim.EnergyAndMinDist(s.points, p)
	if err != nil {
		return fmt.Errorf("%s: %w", methodSetPotential, err)
	}
	s.pot = p
	s.metrics = m
	s.tracker.Reset()
	s.history = []HistoryPoint{s.entry()}
	s.revision++
	s.log.Info().Stringer("potential", p).Float64("energy", m.Energy).Msg("potential changed")

	return nil
}

// SetPoints replaces the configuration. Points are normalised onto the
// sphere; N and the dimension follow the input. The step counter and history
// restart.
func (s *Session) SetPoints(ps sphere.PointSet) error {
	if err := ps.Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodSetPoints, err)
	}
	if len(ps) > sphere.MaxPoints {
		return fmt.Errorf("%s: n=%d: %w", methodSetPoints, len(ps), ErrTooManyPoints)
	}
	if ps.Dim() < 2 {
		return fmt.Errorf("%s: d=%d: %w", methodSetPoints, ps.Dim(), ErrDimensionTooSmall)
	}
	next := make(sphere.PointSet, len(ps))
	for i, p := range ps {
		next[i] = vec.Normalize(p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := optim.EnergyAndMinDist(next, s.pot)
	if err != nil {
		return fmt.Errorf("%s: %w", methodSetPoints, err)
	}
	s.n, s.dim = len(next), next.Dim()
	s.install(next, m)
	s.log.Info().Int("n", s.n).Int("dim", s.dim).Msg("points replaced")

	return nil
}

// ResetStepCounter sets the step counter to zero.
func (s *Session) ResetStepCounter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = 0
}

// ClearHistory keeps only the current state as the single history entry.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = []HistoryPoint{s.entry()}
}

// Advance takes min(k, MaxStepsPerCall) optimizer steps and feeds the
// energy transition to the convergence tracker once. It returns the number
// of steps taken; k = 0 is a no-op.
func (s *Session) Advance(k int) (int, error) {
	if k < 0 {
		return 0, fmt.Errorf("%s: k=%d: %w", methodAdvance, k, optim.ErrNegativeSteps)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	k = min(k, s.maxSteps)
	if k == 0 {
		return 0, nil
	}

	start := time.Now()
	next, err := optim.StepMany(s.points, s.pot, s.eta, k)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodAdvance, err)
	}
	m, err := optim.EnergyAndMinDist(next, s.pot)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodAdvance, err)
	}
	prevE := s.metrics.Energy
	s.points = next
	s.metrics = m
	s.step += k
	s.revision++
	near := s.tracker.Observe(prevE, m.Energy)

	if s.step%HistoryEvery == 0 {
		s.history = append(s.history, s.entry())
		if over := len(s.history) - HistoryMax; over > 0 {
			s.history = slices.Delete(s.history, 0, over)
		}
	}
	metrics.ObserveSteps(k, time.Since(start))
	s.log.Debug().
		Int("step", s.step).
		Float64("energy", m.Energy).
		Float64("min_dist", m.MinDist).
		Bool("near_converged", near).
		Msg("advanced")

	return k, nil
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		ID:            s.id,
		Revision:      s.revision,
		N:             s.n,
		Dim:           s.dim,
		Points:        s.points.Clone(),
		Eta:           s.eta,
		Potential:     SpecOf(s.pot),
		Step:          s.step,
		Energy:        s.metrics.Energy,
		MinDist:       s.metrics.MinDist,
		Streak:        s.tracker.Streak(),
		NearConverged: s.tracker.NearConverged(),
		History:       slices.Clone(s.history),
	}
}

// resample draws n fresh points; the caller holds the lock or owns s.
func (s *Session) resample() error {
	ps, err := sphere.Random(s.n, s.dim, sphere.WithSource(s.src))
	if err != nil {
		return err
	}
	m, err := optim.EnergyAndMinDist(ps, s.pot)
	if err != nil {
		return err
	}
	s.install(ps, m)

	return nil
}

// install replaces the points and restarts step, history and tracker.
func (s *Session) install(ps sphere.PointSet, m optim.Metrics) {
	s.points = ps
	s.metrics = m
	s.step = 0
	s.tracker.Reset()
	s.history = []HistoryPoint{s.entry()}
	s.revision++
}

func (s *Session) entry() HistoryPoint {
	return HistoryPoint{Step: s.step, Energy: s.metrics.Energy, MinDist: s.metrics.MinDist}
}
