// Package shardtable implements the per-core view of which execution
// core currently owns a given partition's coordinator replica.
//
// A mutex-guarded map plus copy-out accessors, narrowed to the router's
// actual need: partition -> core, nothing about primary/replica status,
// which belongs to the group manager.
//
// A Table presents an immutable snapshot for the duration of one
// lookup: CoreFor takes a read lock, copies the result, and releases
// before returning, so no caller ever observes a table mutating under
// it mid-lookup.
package shardtable
