package router

import (
	"golang.org/x/exp/slices"

	"github.com/redpanda-data/grouprouter/internal/groupid"
	"github.com/redpanda-data/grouprouter/internal/groupmgr"
	"github.com/redpanda-data/grouprouter/internal/partition"
	"github.com/redpanda-data/grouprouter/internal/reactor"
)

// ShardFor is a pure, re-entrant lookup returning the routing decision
// for group without performing any cross-core call. The decision is a
// snapshot — a later call may return a different core if ownership has
// moved in between (no pinning is attempted).
func (rt *Router) ShardFor(group groupid.ID) (partition.ID, reactor.CoreID, bool) {
	return rt.resolve(group)
}

// SortListedGroups reorders groups in place by group identifier.
// ListGroups itself makes no ordering promise; callers that want a
// deterministic rendering — the demo HTTP surface, golden-file tests —
// can opt into this explicitly rather than have ListGroups silently
// impose an order.
func SortListedGroups(groups []groupmgr.ListedGroup) {
	slices.SortFunc(groups, func(a, b groupmgr.ListedGroup) int {
		switch {
		case a.Group < b.Group:
			return -1
		case a.Group > b.Group:
			return 1
		default:
			return 0
		}
	})
}
