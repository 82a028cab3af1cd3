// Package deferred implements a synchronous deferred-completion primitive.
//
// A Promise stands for the eventual success or failure of an operation that
// has not finished yet. Observers register continuations with Done and Catch
// before the outcome is known; the owner later reports the outcome with
// exactly one call to Resolve or Reject, which invokes the matching handlers
// synchronously, in registration order, before control returns to the
// settling caller. Handlers registered after settlement are evaluated
// immediately against the settled state.
//
// Then composes operations sequentially: the follow-up operation starts only
// after its predecessor resolves, and any failure along the chain rejects the
// derived promise without running later steps. All aggregates a fixed set of
// promises: the result resolves once every input has resolved and rejects
// with the cause of the first input to reject.
//
// The package never starts goroutines and never blocks; "asynchrony" here
// means deferred invocation order only. A Promise is meant to be owned and
// settled by a single logical actor. Settling or registering from multiple
// goroutines without external synchronization is a data race.
package deferred
