package localsearch

import "errors"

var (
	// ErrNoCrossings reports an instance whose conflict rows were not computed.
	ErrNoCrossings = errors.New("localsearch: instance has no conflict rows")

	// ErrInvalidInput reports a starting colouring that does not verify.
	ErrInvalidInput = errors.New("localsearch: starting colouring is not valid")

	// ErrVerify reports a result that failed verification; it indicates a bug.
	ErrVerify = errors.New("localsearch: result failed verification")
)
