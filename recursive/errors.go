package recursive

import "errors"

var (
	// ErrNotGeometric reports an abstract instance; lines cannot split it.
	ErrNotGeometric = errors.New("recursive: instance has no geometry")

	// ErrNoCrossings reports an instance whose conflict rows were not computed.
	ErrNoCrossings = errors.New("recursive: instance has no conflict rows")
)
