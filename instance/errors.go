package instance

import "errors"

// ErrMalformed reports an instance description that cannot be decoded or
// whose counts and indices are inconsistent.
var ErrMalformed = errors.New("instance: malformed description")

// ErrIndex reports an item index outside [0, m) or a repeated index in Sub.
var ErrIndex = errors.New("instance: index out of range")

// ErrAsymmetric reports a conflict row pair (i, j) with only one direction set.
var ErrAsymmetric = errors.New("instance: asymmetric conflicts")
