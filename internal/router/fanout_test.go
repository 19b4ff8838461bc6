package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redpanda-data/grouprouter/internal/groupid"
	"github.com/redpanda-data/grouprouter/internal/groupmgr"
	"github.com/redpanda-data/grouprouter/internal/kerr"
	"github.com/redpanda-data/grouprouter/internal/mapper"
	"github.com/redpanda-data/grouprouter/internal/partition"
	"github.com/redpanda-data/grouprouter/internal/reactor"
	"github.com/redpanda-data/grouprouter/internal/shardtable"
)

// One core reporting a loading error still lets the others contribute:
// the aggregate error kind is non-none and the concatenated group list
// is the multiset union of all cores' partial lists.
func TestListGroupsOneLoadingCoreDegradesAggregate(t *testing.T) {
	handle := groupmgr.StubHandle{
		0: &groupmgr.Stub{ListGroupsFunc: func(context.Context) (kerr.Kafka, []groupmgr.ListedGroup) {
			return kerr.KafkaNone, []groupmgr.ListedGroup{{Group: groupid.FromString("A")}}
		}},
		1: &groupmgr.Stub{ListGroupsFunc: func(context.Context) (kerr.Kafka, []groupmgr.ListedGroup) {
			return kerr.Kafka(14), nil
		}},
		2: &groupmgr.Stub{ListGroupsFunc: func(context.Context) (kerr.Kafka, []groupmgr.ListedGroup) {
			return kerr.KafkaNone, []groupmgr.ListedGroup{
				{Group: groupid.FromString("B")},
				{Group: groupid.FromString("C")},
			}
		}},
	}

	rt, _ := newTestRouter(t, mapper.Empty{}, shardtable.New(), handle, 3)

	code, groups, err := rt.ListGroups(context.Background())

	require.NoError(t, err)
	assert.NotEqual(t, kerr.KafkaNone, code)
	require.Len(t, groups, 3)

	seen := make(map[groupid.ID]bool)
	for _, g := range groups {
		seen[g.Group] = true
	}
	assert.True(t, seen[groupid.FromString("A")])
	assert.True(t, seen[groupid.FromString("B")])
	assert.True(t, seen[groupid.FromString("C")])
}

// All cores report "none" — aggregate is "none" and the union is
// complete.
func TestListGroupsAllCoresSucceed(t *testing.T) {
	handle := groupmgr.StubHandle{
		0: &groupmgr.Stub{ListGroupsFunc: func(context.Context) (kerr.Kafka, []groupmgr.ListedGroup) {
			return kerr.KafkaNone, []groupmgr.ListedGroup{{Group: groupid.FromString("A")}}
		}},
		1: &groupmgr.Stub{ListGroupsFunc: func(context.Context) (kerr.Kafka, []groupmgr.ListedGroup) {
			return kerr.KafkaNone, []groupmgr.ListedGroup{{Group: groupid.FromString("B")}}
		}},
	}

	rt, _ := newTestRouter(t, mapper.Empty{}, shardtable.New(), handle, 2)

	code, groups, err := rt.ListGroups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, kerr.KafkaNone, code)
	assert.Len(t, groups, 2)
}

// ListGroups returns an error joining every core's dispatch failure
// when InvokeOn itself cannot reach the destination core, without
// turning that failure into a business error code.
func TestListGroupsInvokeOnFailureIsReturnedNotMasked(t *testing.T) {
	handle := groupmgr.StubHandle{
		0: &groupmgr.Stub{},
	}
	rt, _ := newTestRouter(t, mapper.Empty{}, shardtable.New(), handle, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, groups, err := rt.ListGroups(ctx)

	require.Error(t, err)
	assert.Equal(t, kerr.KafkaNone, code)
	assert.Empty(t, groups)
}

// g2 is unmapped and resolved immediately with "not coordinator"
// without touching any core; g1 and g3 both map to core 1 and are
// dispatched in a single cross-core call.
func TestDeleteGroupsMixedOutcome(t *testing.T) {
	g1, g2, g3 := groupid.FromString("g1"), groupid.FromString("g2"), groupid.FromString("g3")
	p1 := partition.ID{Namespace: "ns", Topic: "t", Index: 1}
	p3 := partition.ID{Namespace: "ns", Topic: "t", Index: 3}

	shards := shardtable.New()
	shards.Set(p1, 1)
	shards.Set(p3, 1)

	var observedItems []groupmgr.DeleteGroupsItem
	stub := &groupmgr.Stub{
		DeleteGroupsFunc: func(_ context.Context, items []groupmgr.DeleteGroupsItem) []groupmgr.DeleteGroupsResult {
			observedItems = items
			results := make([]groupmgr.DeleteGroupsResult, len(items))
			for i, it := range items {
				results[i] = groupmgr.DeleteGroupsResult{Group: it.Group, ErrorCode: kerr.KafkaNone}
			}
			return results
		},
	}

	rt, _ := newTestRouter(t, mapper.Static{g1: p1, g3: p3}, shards, groupmgr.StubHandle{1: stub}, 2)

	results, err := rt.DeleteGroups(context.Background(), []groupid.ID{g1, g2, g3})

	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Len(t, observedItems, 2)
	assert.Equal(t, 1, stub.CallCount("DeleteGroups"))

	byGroup := make(map[groupid.ID]groupmgr.DeleteGroupsResult)
	for _, r := range results {
		byGroup[r.Group] = r
	}
	assert.Equal(t, kerr.KafkaNotCoordinator, byGroup[g2].ErrorCode)
	assert.Equal(t, kerr.KafkaNone, byGroup[g1].ErrorCode)
	assert.Equal(t, kerr.KafkaNone, byGroup[g3].ErrorCode)
}

// When every group is unmapped, n inputs still produce exactly n
// outputs, each resolved locally without any cross-core dispatch.
func TestDeleteGroupsCoverage(t *testing.T) {
	groups := []groupid.ID{groupid.FromString("a"), groupid.FromString("b"), groupid.FromString("c")}
	rt, _ := newTestRouter(t, mapper.Empty{}, shardtable.New(), groupmgr.StubHandle{}, 1)

	results, err := rt.DeleteGroups(context.Background(), groups)
	require.NoError(t, err)
	assert.Len(t, results, len(groups))
}

// A failure on one bucket does not affect another: core 0 fails, core
// 1 still reports its own results.
func TestDeleteGroupsBucketFailureIsolated(t *testing.T) {
	g0, g1 := groupid.FromString("g0"), groupid.FromString("g1")
	p0 := partition.ID{Namespace: "ns", Topic: "t", Index: 0}
	p1 := partition.ID{Namespace: "ns", Topic: "t", Index: 1}

	shards := shardtable.New()
	shards.Set(p0, 0)
	shards.Set(p1, 1)

	handle := groupmgr.StubHandle{
		0: &groupmgr.Stub{DeleteGroupsFunc: func(context.Context, []groupmgr.DeleteGroupsItem) []groupmgr.DeleteGroupsResult {
			return nil
		}},
		1: &groupmgr.Stub{DeleteGroupsFunc: func(_ context.Context, items []groupmgr.DeleteGroupsItem) []groupmgr.DeleteGroupsResult {
			return []groupmgr.DeleteGroupsResult{{Group: items[0].Group, ErrorCode: kerr.KafkaNone}}
		}},
	}

	rt, _ := newTestRouter(t, mapper.Static{g0: p0, g1: p1}, shards, handle, 2)

	results, err := rt.DeleteGroups(context.Background(), []groupid.ID{g0, g1})
	require.NoError(t, err)

	byGroup := make(map[groupid.ID]groupmgr.DeleteGroupsResult)
	for _, r := range results {
		byGroup[r.Group] = r
	}
	assert.Equal(t, kerr.KafkaNone, byGroup[g1].ErrorCode)
}

// DeleteGroups returns an error naming the failed core, and does not
// fabricate result entries for groups whose bucket never dispatched,
// when InvokeOn itself fails for that core.
func TestDeleteGroupsInvokeOnFailureIsReturnedNotMasked(t *testing.T) {
	g0 := groupid.FromString("g0")
	p0 := partition.ID{Namespace: "ns", Topic: "t", Index: 0}

	shards := shardtable.New()
	shards.Set(p0, 0)

	handle := groupmgr.StubHandle{0: &groupmgr.Stub{}}
	rt, _ := newTestRouter(t, mapper.Static{g0: p0}, shards, handle, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := rt.DeleteGroups(ctx, []groupid.ID{g0})

	require.Error(t, err)
	assert.Empty(t, results)
}

func TestShardForIsStatelessAndReentrant(t *testing.T) {
	group := groupid.FromString("g")
	pid := partition.ID{Namespace: "ns", Topic: "t", Index: 0}
	shards := shardtable.New()
	shards.Set(pid, 5)

	rt, _ := newTestRouter(t, mapper.Static{group: pid}, shards, groupmgr.StubHandle{}, 6)

	gotPID, gotCore, ok := rt.ShardFor(group)
	require.True(t, ok)
	assert.Equal(t, pid, gotPID)
	assert.Equal(t, reactor.CoreID(5), gotCore)

	// Re-entrant: calling again yields the same snapshot.
	gotPID2, gotCore2, ok2 := rt.ShardFor(group)
	require.True(t, ok2)
	assert.Equal(t, gotPID, gotPID2)
	assert.Equal(t, gotCore, gotCore2)
}

func TestShardForUnmappedReturnsFalse(t *testing.T) {
	rt, _ := newTestRouter(t, mapper.Empty{}, shardtable.New(), groupmgr.StubHandle{}, 1)

	_, _, ok := rt.ShardFor(groupid.FromString("g"))
	assert.False(t, ok)
}

func TestSortListedGroupsOrdersByGroupID(t *testing.T) {
	groups := []groupmgr.ListedGroup{
		{Group: groupid.FromString("c")},
		{Group: groupid.FromString("a")},
		{Group: groupid.FromString("b")},
	}
	SortListedGroups(groups)
	require.Len(t, groups, 3)
	assert.Equal(t, groupid.FromString("a"), groups[0].Group)
	assert.Equal(t, groupid.FromString("b"), groups[1].Group)
	assert.Equal(t, groupid.FromString("c"), groups[2].Group)
}
