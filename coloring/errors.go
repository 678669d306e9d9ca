// SPDX-License-Identifier: MIT

package coloring

import (
	"errors"
	"fmt"
)

// ErrConflict matches every *ConflictError.
var ErrConflict = errors.New("coloring: conflicting items share a colour")

// ErrColorRange reports a colour outside [0, NumColors).
var ErrColorRange = errors.New("coloring: colour out of range")

// ErrLength reports a colour slice whose length differs from the instance size.
var ErrLength = errors.New("coloring: length mismatch")

// ConflictError describes one offending pair found by Verify.
type ConflictError struct {
	A, B  int // item indices, A < B
	Color int
	// X, Y approximate the shared point (geometric instances only).
	X, Y      float64
	Geometric bool
}

// Error implements error.
func (e *ConflictError) Error() string {
	if e.Geometric {
		return fmt.Sprintf("coloring: items %d and %d share colour %d and intersect near (%.2f,%.2f)",
			e.A, e.B, e.Color, e.X, e.Y)
	}
	return fmt.Sprintf("coloring: items %d and %d share colour %d and conflict", e.A, e.B, e.Color)
}

// Is reports whether target is ErrConflict.
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }
