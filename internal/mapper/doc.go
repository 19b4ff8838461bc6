// Package mapper implements the coordinator mapper: a pure function from
// a group identifier to the partition id of the internal offsets topic
// that is its coordinator.
//
// The hash strategy is FNV-1a over the group identifier's bytes modulo
// the topic's partition count, namespaced to a configured (namespace,
// topic) pair so the mapper always reports into a single, fixed
// internal topic rather than an arbitrary shard space.
//
// A Mapper must be pure and non-suspending: no locks, no I/O, repeated
// calls with the same identifier always agree.
package mapper
