// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"net/http"

	"github.com/katalvlaran/spherelab/autgroup"
	"github.com/katalvlaran/spherelab/design"
	"github.com/katalvlaran/spherelab/optim"
	"github.com/katalvlaran/spherelab/potential"
	"github.com/katalvlaran/spherelab/session"
	"github.com/katalvlaran/spherelab/sphere"
	"github.com/katalvlaran/spherelab/structure"
)

var (
	// ErrSessionNotFound indicates an unknown session id.
	ErrSessionNotFound = errors.New("server: session not found")

	// ErrBadRequest indicates a malformed body or query parameter.
	ErrBadRequest = errors.New("server: bad request")

	// ErrNotConverged indicates a design request on a session that is not
	// near-converged.
	ErrNotConverged = errors.New("server: session is not near-converged")

	// ErrCollaborator indicates the automorphism collaborator failed.
	ErrCollaborator = errors.New("server: automorphism collaborator failed")
)

// badRequest lists the validation sentinels of the packages below.
var badRequest = []error{
	ErrBadRequest,
	optim.ErrBadStepSize,
	optim.ErrNegativeSteps,
	optim.ErrNilPotential,
	potential.ErrUnknownKind,
	potential.ErrBadParameter,
	sphere.ErrTooFewPoints,
	sphere.ErrDimensionMismatch,
	sphere.ErrNonFinite,
	sphere.ErrBadDimension,
	sphere.ErrUnknownSolid,
	session.ErrTooManyPoints,
	session.ErrDimensionTooSmall,
	structure.ErrBadTolerance,
	design.ErrBadKMax,
	design.ErrBadTolerance,
	design.ErrDimensionTooSmall,
	autgroup.ErrBadRequest,
}

// statusOf maps an error to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotConverged):
		return http.StatusConflict
	case errors.Is(err, ErrCollaborator):
		return http.StatusBadGateway
	}
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}
