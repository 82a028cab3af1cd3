package deferred

// Resolved returns a promise that is already resolved, with no intervening
// pending window.
func Resolved() *Promise {
	p := New()
	p.Resolve()

	return p
}

// Rejected returns a promise that is already rejected with cause, with no
// intervening pending window. It panics with ErrNilRejectionCause when cause
// is nil.
func Rejected(cause error) *Promise {
	p := New()
	p.Reject(cause)

	return p
}
