// SPDX-License-Identifier: MIT

package tabu

import "errors"

var (
	// ErrNoCrossings reports an instance whose conflict rows were not computed.
	ErrNoCrossings = errors.New("tabu: instance has no conflict rows")

	// ErrInvalidInput reports a colouring with colours outside [0, NumColors).
	ErrInvalidInput = errors.New("tabu: colouring out of range")
)
