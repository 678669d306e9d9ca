package batch

import "errors"

var (
	// ErrUnknownEngine reports an engine name with no implementation.
	ErrUnknownEngine = errors.New("batch: unknown engine")

	// ErrLoad reports an instance file that could not be read.
	ErrLoad = errors.New("batch: cannot load instance")

	// ErrEngine reports an engine failure on one file.
	ErrEngine = errors.New("batch: engine failed")
)
