package deferred

// All returns a promise aggregating a fixed set of promises. The result
// resolves once every input has resolved and rejects as soon as any input
// rejects, with that input's cause; later rejections among the inputs are
// observed but have no further effect. With no inputs the result is already
// resolved when All returns.
//
// Inputs are not deduplicated: a promise appearing more than once is
// subscribed and counted once per occurrence, so its resolution satisfies
// every occurrence at the same time.
//
// All panics with ErrNilPromise when any input is nil, before subscribing to
// anything.
func All(promises ...*Promise) *Promise {
	for _, promise := range promises {
		if nil == promise {
			panic(ErrNilPromise)
		}
	}

	if 0 == len(promises) {
		return Resolved()
	}

	result := New()
	remaining := len(promises)

	for _, promise := range promises {
		promise.Catch(func(cause error) {
			// Only the first rejection settles the result.
			if StatePending == result.state {
				result.Reject(cause)
			}
		})

		promise.Done(func() {
			remaining--

			// A rejection never decrements, so reaching zero means every
			// occurrence resolved and the result is still pending.
			if 0 == remaining {
				result.Resolve()
			}
		})
	}

	return result
}
