// SPDX-License-Identifier: MIT

package sphere

import (
	"fmt"

	"github.com/katalvlaran/spherelab/vec"
)

// Point counts accepted from an interactive caller.
const (
	MinPoints = 2
	MaxPoints = 200
)

// Point is a vector of fixed dimension, expected to have unit norm.
type Point []float64

// PointSet is an ordered sequence of points. Index i is the identity of
// point i in every derived structure (edges, graphs, labels).
type PointSet []Point

// Len returns the number of points.
func (ps PointSet) Len() int { return len(ps) }

// Dim returns the dimension of the first point, or 0 for an empty set.
func (ps PointSet) Dim() int {
	if len(ps) == 0 {
		return 0
	}

	return len(ps[0])
}

// Clone returns a deep copy.
func (ps PointSet) Clone() PointSet {
	out := make(PointSet, len(ps))
	for i, p := range ps {
		out[i] = append(Point(nil), p...)
	}

	return out
}

// Validate checks the shape constraints every kernel operation relies on:
// N ≥ MinPoints, a common positive dimension and finite coordinates.
func (ps PointSet) Validate() error {
	if len(ps) < MinPoints {
		return fmt.Errorf("n=%d: %w", len(ps), ErrTooFewPoints)
	}
	d := len(ps[0])
	if d == 0 {
		return fmt.Errorf("point 0 is empty: %w", ErrDimensionMismatch)
	}
	for i, p := range ps {
		if len(p) != d {
			return fmt.Errorf("point %d has dim %d, want %d: %w", i, len(p), d, ErrDimensionMismatch)
		}
		if !vec.IsFinite(p) {
			return fmt.Errorf("point %d: %w", i, ErrNonFinite)
		}
	}

	return nil
}

// ClampN clamps a caller-supplied point count into [MinPoints, MaxPoints].
func ClampN(n int) int {
	return max(MinPoints, min(MaxPoints, n))
}
