package shardtable

import (
	"testing"

	"github.com/redpanda-data/grouprouter/internal/partition"
	"github.com/redpanda-data/grouprouter/internal/reactor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCoreFor(t *testing.T) {
	table := New()
	p := partition.ID{Namespace: "kafka-internal", Topic: "__consumer_offsets", Index: 7}

	_, ok := table.CoreFor(p)
	require.False(t, ok, "expected no assignment before Set")

	table.Set(p, reactor.CoreID(2))

	core, ok := table.CoreFor(p)
	require.True(t, ok)
	assert.Equal(t, reactor.CoreID(2), core)
}

func TestRemove(t *testing.T) {
	table := New()
	p := partition.ID{Namespace: "ns", Topic: "t", Index: 0}
	table.Set(p, reactor.CoreID(1))
	table.Remove(p)

	_, ok := table.CoreFor(p)
	assert.False(t, ok)
}

func TestReplaceSwapsWholeSet(t *testing.T) {
	table := New()
	p1 := partition.ID{Namespace: "ns", Topic: "t", Index: 0}
	p2 := partition.ID{Namespace: "ns", Topic: "t", Index: 1}
	table.Set(p1, reactor.CoreID(0))

	table.Replace(map[partition.ID]reactor.CoreID{p2: reactor.CoreID(3)})

	_, ok := table.CoreFor(p1)
	assert.False(t, ok, "old assignment should be gone after Replace")

	core, ok := table.CoreFor(p2)
	require.True(t, ok)
	assert.Equal(t, reactor.CoreID(3), core)
	assert.Equal(t, 1, table.Len())
}

func TestConcurrentAccess(t *testing.T) {
	table := New()
	done := make(chan struct{})

	go func() {
		for i := 0; i < 1000; i++ {
			table.Set(partition.ID{Namespace: "ns", Topic: "t", Index: int32(i % 10)}, reactor.CoreID(i%4))
		}
		close(done)
	}()

	for i := 0; i < 1000; i++ {
		table.CoreFor(partition.ID{Namespace: "ns", Topic: "t", Index: int32(i % 10)})
	}
	<-done
}
