// SPDX-License-Identifier: MIT

package potential

import (
	"fmt"
	"math"
)

// Kind names, as used by configuration and the HTTP surface.
const (
	KindRiesz  = "riesz"
	KindLog    = "log"
	KindPower  = "power"
	KindPFrame = "pframe"
)

const (
	// Eps is the lower clamp applied to pairwise distances.
	Eps = 1e-8

	// EpsT is the lower clamp applied to |⟨x,y⟩| in the pframe gradient.
	EpsT = 1e-12
)

// Potential is the closed set {Riesz, Log, Power, PFrame}.
// The unexported marker keeps the set closed to this package.
type Potential interface {
	fmt.Stringer
	// Kind returns the variant name (KindRiesz, ...).
	Kind() string
	// Param returns the scalar parameter (s or p); 0 for Log.
	Param() float64
	isPotential()
}

// Radial is implemented by potentials that depend on pairwise distance only.
type Radial interface {
	Potential
	// Eval returns f(r) and f'(r), evaluated at max(r, Eps).
	Eval(r float64) (f, fp float64)
}

// InnerProduct is implemented by potentials that act on ⟨x,y⟩ directly.
type InnerProduct interface {
	Potential
	// Value returns f(t).
	Value(t float64) float64
	// Coeff returns c such that ∇ₓ f(⟨x,y⟩) = c·y.
	Coeff(t float64) float64
}

// Riesz is the s-energy kernel r^(−s), s > 0.
type Riesz struct{ S float64 }

// Log is the logarithmic kernel −ln r.
type Log struct{}

// Power maximises r^p by minimising −r^p.
type Power struct{ P float64 }

// PFrame is the frame-potential kernel |⟨x,y⟩|^p.
type PFrame struct{ P float64 }

func (Riesz) isPotential()  {}
func (Log) isPotential()    {}
func (Power) isPotential()  {}
func (PFrame) isPotential() {}

func (Riesz) Kind() string  { return KindRiesz }
func (Log) Kind() string    { return KindLog }
func (Power) Kind() string  { return KindPower }
func (PFrame) Kind() string { return KindPFrame }

func (k Riesz) Param() float64  { return k.S }
func (Log) Param() float64      { return 0 }
func (k Power) Param() float64  { return k.P }
func (k PFrame) Param() float64 { return k.P }

func (k Riesz) String() string  { return fmt.Sprintf("riesz(s=%g)", k.S) }
func (Log) String() string      { return "log" }
func (k Power) String() string  { return fmt.Sprintf("power(p=%g)", k.P) }
func (k PFrame) String() string { return fmt.Sprintf("pframe(p=%g)", k.P) }

// Parse builds a Potential from its kind name and scalar parameter.
// The parameter is ignored for log.
func Parse(kind string, param float64) (Potential, error) {
	switch kind {
	case KindRiesz:
		if !finite(param) || param <= 0 {
			return nil, fmt.Errorf("riesz s=%g: %w", param, ErrBadParameter)
		}
		return Riesz{S: param}, nil
	case KindLog:
		return Log{}, nil
	case KindPower:
		if !finite(param) {
			return nil, fmt.Errorf("power p=%g: %w", param, ErrBadParameter)
		}
		return Power{P: param}, nil
	case KindPFrame:
		if !finite(param) {
			return nil, fmt.Errorf("pframe p=%g: %w", param, ErrBadParameter)
		}
		return PFrame{P: param}, nil
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

var (
	_ Radial       = Riesz{}
	_ Radial       = Log{}
	_ Radial       = Power{}
	_ InnerProduct = PFrame{}
)
