// SPDX-License-Identifier: MIT
// Package: structure
//
// Purpose:
//  - Check that a symmetric matrix is the Gram matrix of unit vectors before
//    spectral work relies on it (trace = N, |Gᵢⱼ| ≤ 1).
//  - Return wrapped ErrNotGram so callers branch with errors.Is.
//
// Determinism & Performance:
//  - Pure and allocation free; visits the upper triangle once, O(n²).
//
// AI-Hints:
//  - Run ValidateGram before EigenSym to fail fast on unnormalized input.
//  - Analyze does not call it: clustering assumes unit norm and never
//    re-verifies it.

package structure

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// UnitTol is the diagonal tolerance used by GramSpectrum.
const UnitTol = 1e-9

// ValidateGram checks that g is non-empty, finite, has |Gᵢᵢ − 1| ≤ tol and
// |Gᵢⱼ| ≤ 1 + tol off the diagonal.
//
// Errors: ErrBadTolerance for tol < 0 or non-finite; ErrNotGram otherwise.
// Complexity: O(n²).
func ValidateGram(g mat.Symmetric, tol float64) error {
	if !(tol >= 0) || math.IsInf(tol, 1) {
		return fmt.Errorf("%s: tol=%g: %w", methodValidateGram, tol, ErrBadTolerance)
	}
	if g == nil || g.SymmetricDim() == 0 {
		return fmt.Errorf("%s: empty matrix: %w", methodValidateGram, ErrNotGram)
	}

	n := g.SymmetricDim()
	for i := 0; i < n; i++ {
		if d := g.At(i, i); !(math.Abs(d-1) <= tol) {
			return fmt.Errorf("%s: G[%d,%d]=%g: %w", methodValidateGram, i, i, d, ErrNotGram)
		}
		for j := i + 1; j < n; j++ {
			if v := g.At(i, j); !(math.Abs(v) <= 1+tol) {
				return fmt.Errorf("%s: G[%d,%d]=%g: %w", methodValidateGram, i, j, v, ErrNotGram)
			}
		}
	}

	return nil
}
