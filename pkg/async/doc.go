// Package async provides a small, generic Future type for running a
// computation on its own goroutine and collecting its result later.
//
// A Future is obtained from Async, which starts the supplied function
// immediately and returns a handle the caller can block on with Await, bound
// with a deadline via AwaitWithTimeout, or poll with IsComplete. Resolved
// wraps an already-available value in a completed Future for call sites that
// expect the asynchronous shape.
//
// The helpers are context-aware: a context canceled before the computation
// starts completes the Future with the context error. Panics inside the
// computation are recovered and surface as an error wrapping ErrPanic rather
// than crashing the process, which matters when futures are produced by
// caller-supplied callbacks.
//
// # Usage
//
//	fut := async.Async(ctx, func(ctx context.Context) (string, error) {
//	    return slowLookup(ctx, id)
//	})
//	// do other work …
//	name, err := fut.AwaitWithTimeout(2 * time.Second)
package async
