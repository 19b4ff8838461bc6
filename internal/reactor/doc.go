// Package reactor is the Go realization of a thread-per-core runtime
// model: one execution thread per CPU core, each hosting a cooperative
// scheduler, where objects live on exactly one core and cross-core
// communication is an explicit, schedulable asynchronous message.
//
// This package is built from the general goroutine-plus-channel worker
// idiom, with bounded concurrency supplied by golang.org/x/sync/semaphore.
//
// # Model
//
// A Reactor is one goroutine per core, draining a buffered channel of
// closures in submission order — this FIFO property is what gives the
// router its "submission order to one core is preserved" guarantee for
// free, with no extra bookkeeping.
//
// An Executor owns every core's Reactor and exposes two primitives:
// InvokeOn (round-trip a closure to a destination core and await its
// result) and SubmitTo (fire-and-forget one-way notification). Both are
// the Go shape of Seastar's invoke_on/submit_to.
//
// A SchedulingGroup is a named CPU-accounting/preemption-class tag;
// entering one is a potential suspension point, modeled here as a
// runtime.Gosched() hint before a task is enqueued rather than a
// blocking call, since Go's own scheduler — not this package — owns
// actual preemption.
//
// A SubmissionGroup bounds the number of concurrent in-flight cross-core
// calls, the source of all backpressure in this system: the router
// enqueues nothing of its own.
package reactor
