// Package partition defines the partition id — the addressable unit of
// the internal offsets topic that a group identifier hashes to.
//
// A partition id is a (namespace, topic, partition-index) triple. It is
// totally ordered and hashable, and is cheap enough to pass by value
// everywhere: the mapper produces one, the shard table consumes one, and
// a routed request carries one in a writable slot.
package partition
