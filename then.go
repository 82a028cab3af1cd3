package deferred

// Then composes the promise with a follow-up operation. It returns a new
// derived promise that settles as a function of the first failure point along
// the chain:
//
// If the source promise rejects, the derived promise rejects with the same
// cause and chain is never invoked. If the source resolves, chain is invoked
// to start the follow-up operation; the derived promise then tracks the
// promise chain returns, resolving when it resolves and rejecting with its
// cause when it rejects.
//
// A panic raised by chain itself is recovered and converted into a rejection
// of the derived promise: an error panic value becomes the cause verbatim,
// any other value is wrapped in a ChainPanicError. This isolation applies
// only to the chain function; panics inside plain Done or Catch handlers are
// not recovered. A nil promise returned by chain rejects the derived promise
// with ErrNilPromise.
//
// Then panics with ErrNilHandler when chain is nil.
func (p *Promise) Then(chain ChainFunc) *Promise {
	if nil == chain {
		panic(ErrNilHandler)
	}

	derived := New()

	p.Catch(func(cause error) {
		derived.Reject(cause)
	})

	p.Done(func() {
		next, err := runChain(chain)
		if nil != err {
			derived.Reject(err)

			return
		}

		next.Catch(func(cause error) {
			derived.Reject(cause)
		})

		next.Done(func() {
			derived.Resolve()
		})
	})

	return derived
}

// runChain invokes chain, converting a panic or a nil result into an error.
func runChain(chain ChainFunc) (next *Promise, err error) {
	// recover() returns nil for panic(nil), which is indistinguishable from
	// no panic at all, so normal completion is tracked explicitly.
	completed := false

	defer func() {
		if completed {
			return
		}

		v := recover()
		if e, ok := v.(error); ok {
			err = e

			return
		}

		err = &ChainPanicError{value: v}
	}()

	next = chain()
	completed = true

	if nil == next {
		return nil, ErrNilPromise
	}

	return next, nil
}
