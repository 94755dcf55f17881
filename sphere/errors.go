// SPDX-License-Identifier: MIT

package sphere

import "errors"

var (
	// ErrTooFewPoints indicates a point set with fewer than MinPoints members.
	ErrTooFewPoints = errors.New("sphere: at least two points are required")

	// ErrDimensionMismatch indicates points of differing (or zero) dimension.
	ErrDimensionMismatch = errors.New("sphere: points must share a positive dimension")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("sphere: NaN or Inf coordinate")

	// ErrBadDimension indicates a requested ambient dimension below 1.
	ErrBadDimension = errors.New("sphere: dimension must be >= 1")

	// ErrUnknownSolid indicates a PlatonicName outside the five solids.
	ErrUnknownSolid = errors.New("sphere: unknown platonic solid")
)
