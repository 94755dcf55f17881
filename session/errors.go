// SPDX-License-Identifier: MIT

package session

import "errors"

var (
	// ErrTooManyPoints indicates a configuration larger than sphere.MaxPoints.
	ErrTooManyPoints = errors.New("session: too many points")

	// ErrDimensionTooSmall indicates points of dimension < 2.
	ErrDimensionTooSmall = errors.New("session: dimension must be >= 2")
)

const (
	methodNew          = "New"
	methodAdvance      = "Advance"
	methodSetEta       = "SetEta"
	methodSetPotential = "SetPotential"
	methodSetPoints    = "SetPoints"
	methodAnalyze      = "Analyze"
)
