// SPDX-License-Identifier: MIT

package design

import "errors"

var (
	// ErrBadKMax indicates a maximum degree below 1.
	ErrBadKMax = errors.New("design: kmax must be >= 1")

	// ErrBadTolerance indicates a negative or non-finite tolerance.
	ErrBadTolerance = errors.New("design: tolerance must be finite and >= 0")

	// ErrDimensionTooSmall indicates points of dimension < 2.
	ErrDimensionTooSmall = errors.New("design: ambient dimension must be >= 2")
)

// method tags used when wrapping errors
const (
	methodEstimate = "Estimate"
	methodMoments  = "Moments"
)
