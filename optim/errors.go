// SPDX-License-Identifier: MIT

package optim

import "errors"

var (
	// ErrBadStepSize indicates η ≤ 0, NaN or ±Inf.
	ErrBadStepSize = errors.New("optim: step size must be finite and > 0")

	// ErrNegativeSteps indicates a negative step count for StepMany.
	ErrNegativeSteps = errors.New("optim: step count must be >= 0")

	// ErrNilPotential indicates a nil potential.
	ErrNilPotential = errors.New("optim: potential is nil")
)

// method tags used when wrapping errors
const (
	methodStep     = "Step"
	methodStepMany = "StepMany"
	methodEnergy   = "EnergyAndMinDist"
)
