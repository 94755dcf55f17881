// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spherelab/sphere"
)

// DefaultRankTol is the relative eigenvalue cut-off used by GramSpectrum.
const DefaultRankTol = 1e-9

// GramSpectrum returns the eigenvalues of the Gram matrix in descending order
// and its numerical rank: the number of eigenvalues above rankTol·λ_max. For
// points in ℝᵈ the rank is at most d; the eigenvalues sum to N.
//
// Points must be unit vectors within UnitTol (ErrNotGram otherwise).
//
// Complexity: O(N²·d) for the Gram matrix plus O(N³) for the eigensolve.
func GramSpectrum(ps sphere.PointSet, rankTol float64) (Spectrum, error) {
	if err := ps.Validate(); err != nil {
		return Spectrum{}, fmt.Errorf("%s: %w", methodSpectrum, err)
	}
	if !(rankTol >= 0) || math.IsInf(rankTol, 1) {
		return Spectrum{}, fmt.Errorf("%s: rankTol=%g: %w", methodSpectrum, rankTol, ErrBadTolerance)
	}

	g := Gram(ps)
	if err := ValidateGram(g, UnitTol); err != nil {
		return Spectrum{}, fmt.Errorf("%s: %w", methodSpectrum, err)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(g, false); !ok {
		return Spectrum{}, fmt.Errorf("%s: %w", methodSpectrum, ErrEigenFailed)
	}
	vals := eig.Values(nil)
	slices.Reverse(vals)

	rank := 0
	cut := rankTol * vals[0]
	for _, v := range vals {
		if v > cut {
			rank++
		}
	}

	return Spectrum{Eigenvalues: vals, Rank: rank}, nil
}
