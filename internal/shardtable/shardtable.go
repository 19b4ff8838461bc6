package shardtable

import (
	"sync"

	"github.com/redpanda-data/grouprouter/internal/partition"
	"github.com/redpanda-data/grouprouter/internal/reactor"
)

// Table maps partition ids to the execution core that currently owns
// that partition's coordinator replica. One Table exists per core (the
// router holds a reference to its own core's table), populated by
// whatever cluster-metadata propagation layer this process runs.
//
// Table is safe for concurrent use: reads take an RLock and copy out
// their result, writes take an exclusive Lock.
type Table struct {
	mu          sync.RWMutex
	assignments map[partition.ID]reactor.CoreID
}

// New returns an empty Table.
func New() *Table {
	return &Table{assignments: make(map[partition.ID]reactor.CoreID)}
}

// CoreFor returns the core that owns id's coordinator replica, or
// ok=false if the table has no assignment for id.
func (t *Table) CoreFor(id partition.ID) (reactor.CoreID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	core, ok := t.assignments[id]
	return core, ok
}

// Set records that id is owned by core. Used by the cluster-metadata
// propagation layer when ownership is learned or changes.
func (t *Table) Set(id partition.ID, core reactor.CoreID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.assignments[id] = core
}

// Remove clears any assignment for id, making it unresolvable until a
// new Set call arrives.
func (t *Table) Remove(id partition.ID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.assignments, id)
}

// Replace atomically swaps the entire assignment set, used when a full
// cluster-metadata refresh arrives rather than an incremental update.
func (t *Table) Replace(assignments map[partition.ID]reactor.CoreID) {
	copied := make(map[partition.ID]reactor.CoreID, len(assignments))
	for k, v := range assignments {
		copied[k] = v
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.assignments = copied
}

// Len reports the number of partitions currently assigned, used by
// metrics and tests.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.assignments)
}
