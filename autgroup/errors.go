// SPDX-License-Identifier: MIT

package autgroup

import "errors"

var (
	// ErrBadRequest indicates a negative vertex count or an out-of-range edge.
	ErrBadRequest = errors.New("autgroup: invalid request")

	// ErrProcess indicates the collaborator could not be started or exited
	// with a non-zero status.
	ErrProcess = errors.New("autgroup: collaborator process failed")

	// ErrDecode indicates the collaborator wrote something other than a
	// result object.
	ErrDecode = errors.New("autgroup: cannot decode collaborator output")
)

const (
	methodRun      = "Run"
	methodValidate = "Validate"
)
