// SPDX-License-Identifier: MIT

package session

import (
	"github.com/katalvlaran/spherelab/design"
	"github.com/katalvlaran/spherelab/potential"
	"github.com/katalvlaran/spherelab/sphere"
	"github.com/katalvlaran/spherelab/structure"
)

// Session defaults.
const (
	DefaultN               = 24
	DefaultDim             = 3
	DefaultEta             = 0.01
	DefaultMaxStepsPerCall = 10

	// HistoryEvery is the step cadence at which history entries are kept.
	HistoryEvery = 5
	// HistoryMax bounds the history; older entries are dropped first.
	HistoryMax = 300
)

// HistoryPoint is one entry of the energy history.
type HistoryPoint struct {
	Step    int     `json:"step"`
	Energy  float64 `json:"energy"`
	MinDist float64 `json:"min_dist"`
}

// PotentialSpec is the wire form of a potential.
type PotentialSpec struct {
	Kind  string  `json:"kind"`
	Param float64 `json:"param"`
}

// Potential builds the variant it names; see potential.Parse.
func (p PotentialSpec) Potential() (potential.Potential, error) {
	return potential.Parse(p.Kind, p.Param)
}

// SpecOf returns the wire form of pot.
func SpecOf(pot potential.Potential) PotentialSpec {
	return PotentialSpec{Kind: pot.Kind(), Param: pot.Param()}
}

// Snapshot is an immutable copy of a session's state.
type Snapshot struct {
	ID            string          `json:"id"`
	Revision      uint64          `json:"revision"`
	N             int             `json:"n"`
	Dim           int             `json:"dim"`
	Points        sphere.PointSet `json:"points"`
	Eta           float64         `json:"eta"`
	Potential     PotentialSpec   `json:"potential"`
	Step          int             `json:"step"`
	Energy        float64         `json:"energy"`
	MinDist       float64         `json:"min_dist"`
	Streak        int             `json:"streak"`
	NearConverged bool            `json:"near_converged"`
	History       []HistoryPoint  `json:"history"`
}

// AnalyzeOptions selects what Analyze computes. Zero tolerances and KMax
// select the package defaults of structure and design.
type AnalyzeOptions struct {
	StructureTol float64
	DesignKMax   int
	DesignTol    float64

	// RequireConvergence skips the design estimate unless the session is
	// near-converged. Force overrides it.
	RequireConvergence bool
	Force              bool
	// SkipDesign disables the design estimate entirely.
	SkipDesign bool

	// Spectrum adds the Gram eigenvalues.
	Spectrum bool
}

// Analysis is the derived structure of one revision.
type Analysis struct {
	ID            string                `json:"id"`
	Revision      uint64                `json:"revision"`
	NearConverged bool                  `json:"near_converged"`
	Structure     structure.Summary     `json:"structure"`
	Degrees       structure.DegreeStats `json:"degrees"`
	Design        *design.Report        `json:"design,omitempty"`
	Spectrum      *structure.Spectrum   `json:"spectrum,omitempty"`
}
