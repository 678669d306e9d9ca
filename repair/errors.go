package repair

import "errors"

var (
	// ErrNoCrossings reports an instance whose conflict rows were not computed.
	ErrNoCrossings = errors.New("repair: instance has no conflict rows")

	// ErrInvalidInput reports a colouring with colours outside [0, NumColors).
	ErrInvalidInput = errors.New("repair: colouring out of range")

	// ErrVerify reports a result that failed verification; it indicates a bug.
	ErrVerify = errors.New("repair: result failed verification")
)
