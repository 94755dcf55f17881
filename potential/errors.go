// SPDX-License-Identifier: MIT

package potential

import "errors"

var (
	// ErrUnknownKind indicates a kind string outside riesz/log/power/pframe.
	ErrUnknownKind = errors.New("potential: unknown kind")

	// ErrBadParameter indicates a non-finite parameter, or s ≤ 0 for riesz.
	ErrBadParameter = errors.New("potential: invalid parameter")
)
