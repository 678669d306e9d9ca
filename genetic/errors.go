package genetic

import "errors"

var (
	// ErrNoCrossings reports an instance whose conflict rows were not computed.
	ErrNoCrossings = errors.New("genetic: instance has no conflict rows")

	// ErrInvalidSeed reports a seed colouring that does not verify.
	ErrInvalidSeed = errors.New("genetic: seed colouring is not valid")

	// ErrMismatch reports a seed colouring of another instance.
	ErrMismatch = errors.New("genetic: seed colours a different instance")
)
