package external

import "errors"

var (
	// ErrTooLarge reports an instance above Options.MaxItems.
	ErrTooLarge = errors.New("external: instance too large")

	// ErrNoCrossings reports an instance whose conflict rows were not computed.
	ErrNoCrossings = errors.New("external: instance has no conflict rows")

	// ErrBadOutcome reports a solver answer of the wrong length, with
	// colours outside [0, K) or with a wrong conflict count.
	ErrBadOutcome = errors.New("external: malformed solver outcome")

	// ErrNilSolver reports a missing solver.
	ErrNilSolver = errors.New("external: nil solver")
)
