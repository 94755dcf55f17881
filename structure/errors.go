// SPDX-License-Identifier: MIT

package structure

import "errors"

var (
	// ErrBadTolerance indicates a negative or non-finite clustering tolerance.
	ErrBadTolerance = errors.New("structure: tolerance must be finite and >= 0")

	// ErrBadEdge indicates an edge that is not a canonical pair i<j in [0,n),
	// or a duplicate.
	ErrBadEdge = errors.New("structure: edge must satisfy 0 <= i < j < n and be unique")

	// ErrNoCenters indicates EdgesByLayer was called with an empty center list.
	ErrNoCenters = errors.New("structure: at least one center is required")

	// ErrEigenFailed indicates the Gram eigen-decomposition did not converge.
	ErrEigenFailed = errors.New("structure: eigen decomposition failed")

	// ErrNotGram indicates a matrix that is not the Gram matrix of unit
	// vectors: empty, non-finite, a diagonal entry off 1 or |Gᵢⱼ| > 1.
	ErrNotGram = errors.New("structure: not a Gram matrix of unit vectors")
)

// method tags used when wrapping errors
const (
	methodAnalyze      = "Analyze"
	methodBuildGraph   = "BuildGraph"
	methodEdgesByLayer = "EdgesByLayer"
	methodSpectrum     = "GramSpectrum"
	methodCluster1D    = "Cluster1D"
	methodValidateGram = "ValidateGram"
)
