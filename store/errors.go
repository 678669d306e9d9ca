package store

import "errors"

var (
	// ErrMalformed reports an unreadable solution document.
	ErrMalformed = errors.New("store: malformed solution")

	// ErrMismatch reports a document for another instance or of the wrong length.
	ErrMismatch = errors.New("store: solution does not match instance")

	// ErrInvalidSolution reports an attempt to persist a colouring that fails
	// verification. Nothing is written.
	ErrInvalidSolution = errors.New("store: refusing to persist invalid solution")
)
