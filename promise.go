package deferred

// Promise is a deferred-completion handle. It starts pending and is settled
// exactly once by its owner, via Resolve or Reject. Once settled it is inert:
// its state and cause stay queryable, its handler lists are drained, and any
// further registration is evaluated immediately against the settled state.
//
// The zero value is not usable; call New.
type Promise struct {
	state             State
	cause             error
	completedHandlers []CompletedHandler
	errorHandlers     []ErrorHandler
}

// New returns a pending promise.
func New() *Promise {
	return &Promise{
		state: StatePending,
	}
}

// State returns the current state of the promise.
func (p *Promise) State() State {
	return p.state
}

// Cause returns the rejection cause, or nil unless the promise is rejected.
func (p *Promise) Cause() error {
	return p.cause
}

// Resolve settles the promise as succeeded and synchronously invokes every
// registered CompletedHandler in registration order. Resolve does not return
// until all directly and transitively triggered handlers have run.
//
// Resolve panics with ErrAlreadySettled when the promise is not pending;
// settling twice is a usage error, never absorbed into the promise.
func (p *Promise) Resolve() {
	if StatePending != p.state {
		panic(ErrAlreadySettled)
	}

	p.state = StateResolved

	handlers := p.completedHandlers
	p.completedHandlers = nil
	p.errorHandlers = nil

	for _, handler := range handlers {
		handler()
	}
}

// Reject settles the promise as failed with the given cause and synchronously
// invokes every registered ErrorHandler in registration order. The cause is
// stored and delivered exactly as given, never wrapped.
//
// Reject panics with ErrNilRejectionCause when cause is nil and with
// ErrAlreadySettled when the promise is not pending.
func (p *Promise) Reject(cause error) {
	if nil == cause {
		panic(ErrNilRejectionCause)
	}

	if StatePending != p.state {
		panic(ErrAlreadySettled)
	}

	p.state = StateRejected
	p.cause = cause

	handlers := p.errorHandlers
	p.completedHandlers = nil
	p.errorHandlers = nil

	for _, handler := range handlers {
		handler(cause)
	}
}

// Done registers onCompleted to run when the promise resolves. If the promise
// is already resolved, onCompleted runs immediately, on the caller's stack.
// If the promise is already rejected, onCompleted is dropped without being
// called, since resolution can no longer happen.
//
// Done returns the same promise so registrations can be chained. It panics
// with ErrNilHandler when onCompleted is nil.
func (p *Promise) Done(onCompleted CompletedHandler) *Promise {
	if nil == onCompleted {
		panic(ErrNilHandler)
	}

	switch p.state {
	case StatePending:
		p.completedHandlers = append(p.completedHandlers, onCompleted)

	case StateResolved:
		onCompleted()

	case StateRejected:
		// Resolution can no longer happen; the handler is dropped.
	}

	return p
}

// Catch registers onError to run with the cause when the promise rejects. If
// the promise is already rejected, onError runs immediately, on the caller's
// stack. If the promise is already resolved, onError is dropped without being
// called, since rejection can no longer happen.
//
// Catch returns the same promise so registrations can be chained. It panics
// with ErrNilHandler when onError is nil.
func (p *Promise) Catch(onError ErrorHandler) *Promise {
	if nil == onError {
		panic(ErrNilHandler)
	}

	switch p.state {
	case StatePending:
		p.errorHandlers = append(p.errorHandlers, onError)

	case StateRejected:
		onError(p.cause)

	case StateResolved:
		// Rejection can no longer happen; the handler is dropped.
	}

	return p
}
