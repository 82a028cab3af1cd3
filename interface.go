package deferred

type State string

const (
	StatePending  = State("pending")
	StateResolved = State("resolved")
	StateRejected = State("rejected")
)

// CompletedHandler observes a resolution. It receives nothing because the
// promise carries no value.
type CompletedHandler func()

// ErrorHandler observes a rejection and receives its cause.
type ErrorHandler func(cause error)

// ChainFunc starts a follow-up operation and returns the promise tracking it.
type ChainFunc func() *Promise

// Settler is the owner-side view of a promise: the capability to settle it.
// Owners keep the Settler and hand out only the Observable, so consumers
// cannot settle a promise they do not own.
type Settler interface {
	Resolve()
	Reject(cause error)
}

// Observable is the consumer-side view of a promise: registration and
// inspection, but no settlement. Registration methods return the concrete
// *Promise, as on the struct itself; the split takes effect where an owner
// types a signature as Observable, keeping Resolve and Reject out of reach
// of code written against that signature.
type Observable interface {
	Done(onCompleted CompletedHandler) *Promise
	Catch(onError ErrorHandler) *Promise
	Then(chain ChainFunc) *Promise
	State() State
	Cause() error
}
