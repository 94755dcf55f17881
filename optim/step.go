// SPDX-License-Identifier: MIT
// Package: optim
//
// Purpose:
//  - One projected-gradient step on the unit sphere and its k-fold composition.
//  - Retraction by normalization, so the unit-norm invariant holds for any η.
//
// Determinism & Performance:
//  - Pure: the input set is cloned, never written.
//  - Gradient accumulation visits every ordered pair once per step.
//
// AI-Hints:
//  - Batch with StepMany to amortize validation; the caller owns any cap on k.
//  - Route pframe through the InnerProduct branch only; Radial has no t form.

package optim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spherelab/potential"
	"github.com/katalvlaran/spherelab/sphere"
	"github.com/katalvlaran/spherelab/vec"
)

// Step performs one projected-gradient step of size eta and returns the new
// configuration. ps is left untouched.
//
// Errors: shape sentinels from sphere.PointSet.Validate, ErrNilPotential,
// ErrBadStepSize. Degenerate geometry is never an error.
// Complexity: O(N²·d) time, O(N·d) memory.
func Step(ps sphere.PointSet, pot potential.Potential, eta float64) (sphere.PointSet, error) {
	if err := validate(ps, pot, eta); err != nil {
		return nil, fmt.Errorf("%s: %w", methodStep, err)
	}

	return step(ps, pot, eta), nil
}

// StepMany applies Step k times. k = 0 returns a copy of ps. Intermediate
// configurations are not observable. There is no upper bound on k.
// Complexity: O(k·N²·d).
func StepMany(ps sphere.PointSet, pot potential.Potential, eta float64, k int) (sphere.PointSet, error) {
	if err := validate(ps, pot, eta); err != nil {
		return nil, fmt.Errorf("%s: %w", methodStepMany, err)
	}
	if k < 0 {
		return nil, fmt.Errorf("%s: k=%d: %w", methodStepMany, k, ErrNegativeSteps)
	}

	cur := ps.Clone()
	for s := 0; s < k; s++ {
		cur = step(cur, pot, eta)
	}

	return cur, nil
}

func validate(ps sphere.PointSet, pot potential.Potential, eta float64) error {
	if err := ps.Validate(); err != nil {
		return err
	}
	if pot == nil {
		return ErrNilPotential
	}
	if !(eta > 0) || math.IsInf(eta, 1) {
		return fmt.Errorf("eta=%g: %w", eta, ErrBadStepSize)
	}

	return nil
}

// step assumes validated input.
func step(ps sphere.PointSet, pot potential.Potential, eta float64) sphere.PointSet {
	grads := gradients(ps, pot)

	next := make(sphere.PointSet, len(ps))
	for i, x := range ps {
		g := grads[i]
		// tangent projection: g − (g·x)x
		proj := vec.Sub(g, vec.Scale(x, vec.Dot(g, x)))
		// Euclidean step, then retraction onto the sphere
		next[i] = vec.Normalize(vec.Sub(x, vec.Scale(proj, eta)))
	}

	return next
}

// gradients returns the Euclidean gradient of the total energy at every point.
func gradients(ps sphere.PointSet, pot potential.Potential) [][]float64 {
	n, d := len(ps), ps.Dim()
	grads := make([][]float64, n)
	diff := make([]float64, d)

	for i, xi := range ps {
		gi := make([]float64, d)
		for j, xj := range ps {
			if i == j {
				continue
			}
			switch k := pot.(type) {
			case potential.InnerProduct:
				// ∇ₓ f(⟨x,y⟩) = c·y
				floats.AddScaled(gi, k.Coeff(vec.Dot(xi, xj)), xj)
			case potential.Radial:
				floats.SubTo(diff, xi, xj)
				r := floats.Norm(diff, 2)
				_, fp := k.Eval(r)
				floats.AddScaled(gi, fp/math.Max(r, potential.Eps), diff)
			}
		}
		grads[i] = gi
	}

	return grads
}
