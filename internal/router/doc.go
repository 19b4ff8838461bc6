// Package router implements the group coordinator router: the component
// that resolves a Kafka consumer-group or transactional-group request to
// the single execution core that owns its coordinator state, crosses
// into that core, and returns the result to the caller.
//
// Router is stateless and holds only immutable references (mapper,
// shard table, group-manager handle, executor, scheduling group,
// submission group); every routing decision is recomputed per request
// from those references, never cached.
//
// Grounded structurally on internal/coordinator's "resolve local state,
// then act" shape (ShardRegistry.GetShardForKey followed by dispatch in
// HealthMonitor), generalized with Go generics for the eleven
// single-group operations that otherwise differ only in request/
// response type — the "PT *T" constrained-pointer-type pattern, the same
// shape the pack's one other generics user (estuary-flow's
// runtime/task.go, taskBase[TaskSpec pf.Task]) uses to let a function
// call pointer-receiver methods on a type parameter.
package router
