package mapper

import (
	"hash/fnv"

	"github.com/redpanda-data/grouprouter/internal/groupid"
	"github.com/redpanda-data/grouprouter/internal/partition"
)

// Mapper resolves a group identifier to the partition id of its
// coordinator, or reports that the mapping cannot be resolved locally.
//
// Implementations must be pure: the same group identifier always yields
// the same result, and a lookup never blocks or suspends.
type Mapper interface {
	// PartitionFor returns the partition id that owns group's
	// coordinator state, or ok=false if no mapping exists (e.g. the
	// internal offsets topic has not finished being created).
	PartitionFor(group groupid.ID) (id partition.ID, ok bool)
}

// FNV is the default Mapper: FNV-1a hash of the group identifier's
// bytes, modulo a fixed partition count, namespaced into a single
// internal topic.
//
// FNV never returns ok=false once constructed with PartitionCount > 0;
// "absent" mappings in tests are produced with Empty, below, or by a
// test double.
type FNV struct {
	// Namespace and Topic identify the internal offsets topic this
	// mapper resolves into, e.g. ("kafka-internal",
	// "__consumer_offsets").
	Namespace string
	Topic     string

	// PartitionCount is the number of partitions in Topic. Must be > 0.
	PartitionCount int32
}

// PartitionFor implements Mapper.
func (m FNV) PartitionFor(group groupid.ID) (partition.ID, bool) {
	if m.PartitionCount <= 0 {
		return partition.ID{}, false
	}

	h := fnv.New32a()
	h.Write(group.Bytes())
	index := int32(h.Sum32() % uint32(m.PartitionCount))

	return partition.ID{
		Namespace: m.Namespace,
		Topic:     m.Topic,
		Index:     index,
	}, true
}

// Empty is a Mapper that never resolves a mapping. It is used in tests
// that exercise the router's "no coordinator" failure path.
type Empty struct{}

// PartitionFor implements Mapper.
func (Empty) PartitionFor(groupid.ID) (partition.ID, bool) {
	return partition.ID{}, false
}

// Static is a Mapper backed by a fixed lookup table, used in tests that
// need specific groups to resolve to specific partitions.
type Static map[groupid.ID]partition.ID

// PartitionFor implements Mapper.
func (s Static) PartitionFor(group groupid.ID) (partition.ID, bool) {
	id, ok := s[group]
	return id, ok
}
