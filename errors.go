package deferred

import (
	"fmt"

	"github.com/juju/errors"
)

var (
	// ErrAlreadySettled is the panic value of Resolve and Reject when the
	// promise has already left the pending state.
	ErrAlreadySettled = errors.New("promise is already settled")

	// ErrNilRejectionCause is the panic value of Reject and Rejected when
	// called with a nil cause.
	ErrNilRejectionCause = errors.New("rejection cause must not be nil")

	// ErrNilHandler is the panic value of Done, Catch and Then when called
	// with a nil function.
	ErrNilHandler = errors.New("handler must not be nil")

	// ErrNilPromise is the panic value of All when given a nil promise, and
	// the rejection cause of a promise derived from a chain function that
	// returned nil.
	ErrNilPromise = errors.New("promise must not be nil")
)

// ChainPanicError carries a non-error value recovered from a panicking chain
// function. The derived promise is rejected with it as the cause.
type ChainPanicError struct {
	value interface{}
}

func (e *ChainPanicError) Error() string {
	return fmt.Sprintf("chain function panicked: %v", e.value)
}

// Value returns the recovered panic value.
func (e *ChainPanicError) Value() interface{} {
	return e.value
}
