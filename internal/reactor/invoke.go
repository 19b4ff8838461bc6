package reactor

import "context"

// InvokeOn is the cross-core round-trip primitive: it submits fn to
// run on core's reactor, waits for its result, and returns it to the
// caller on whatever goroutine called InvokeOn (the originating core).
//
// InvokeOn is a package-level generic function rather than a method
// because Go methods cannot carry additional type parameters beyond
// their receiver's.
//
// Cancellation: if ctx is done before the destination finishes, InvokeOn
// returns ctx.Err() to the caller, but the submitted closure keeps
// running on the destination reactor to completion — an in-flight
// request cannot be canceled mid-hop, so the destination always runs to
// completion and its result is simply discarded.
func InvokeOn[T any](
	ctx context.Context,
	ex *Executor,
	core CoreID,
	sg *SchedulingGroup,
	subg *SubmissionGroup,
	fn func(context.Context) (T, error),
) (T, error) {
	var zero T

	if err := subg.Acquire(ctx); err != nil {
		return zero, err
	}
	defer subg.Release()

	sg.Enter()

	type outcome struct {
		val T
		err error
	}
	resultCh := make(chan outcome, 1)

	ex.reactor(core).submit(func() {
		v, err := fn(ctx)
		resultCh <- outcome{val: v, err: err}
	})

	select {
	case res := <-resultCh:
		return res.val, res.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
