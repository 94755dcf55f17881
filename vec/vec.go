// SPDX-License-Identifier: MIT

package vec

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dot returns ⟨a,b⟩.
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// Sub returns a−b.
func Sub(a, b []float64) []float64 {
	return floats.SubTo(make([]float64, len(a)), a, b)
}

// Add returns a+b.
func Add(a, b []float64) []float64 {
	return floats.AddTo(make([]float64, len(a)), a, b)
}

// Scale returns c·a.
func Scale(a []float64, c float64) []float64 {
	return floats.ScaleTo(make([]float64, len(a)), c, a)
}

// Norm returns the Euclidean norm ‖a‖.
func Norm(a []float64) float64 {
	return floats.Norm(a, 2)
}

// Canonical returns the first basis vector e₀ of dimension d.
// Returns nil for d < 1.
func Canonical(d int) []float64 {
	if d < 1 {
		return nil
	}
	e := make([]float64, d)
	e[0] = 1

	return e
}

// Normalize returns a/‖a‖. If the norm is zero or not finite the canonical
// unit vector Canonical(len(a)) is returned instead.
func Normalize(a []float64) []float64 {
	n := Norm(a)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Canonical(len(a))
	}

	return Scale(a, 1/n)
}

// IsFinite reports whether every component of a is neither NaN nor ±Inf.
func IsFinite(a []float64) bool {
	for _, x := range a {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
