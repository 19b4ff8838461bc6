package router

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/redpanda-data/grouprouter/internal/groupid"
	"github.com/redpanda-data/grouprouter/internal/groupmgr"
	"github.com/redpanda-data/grouprouter/internal/kerr"
	"github.com/redpanda-data/grouprouter/internal/reactor"
)

// listGroupsResult is one core's partial list_groups answer, collected
// before reduction.
type listGroupsResult struct {
	code   kerr.Kafka
	groups []groupmgr.ListedGroup
}

// ListGroups invokes list_groups on every core concurrently, then
// reduces the partial answers. The reduction walks cores in ascending
// CoreID order, a stable and reproducible choice; SortListedGroups
// below offers callers an explicit, opt-in way to additionally order
// the concatenated group list by group identifier.
//
// errgroup.Group is used here only for its goroutine/Wait bookkeeping:
// every Go func always returns nil, so a cross-core failure on one core
// never cancels the others. See DESIGN.md for why errgroup's
// cancel-on-first-error behavior is deliberately unused.
//
// The returned kerr.Kafka aggregate reflects only business-level
// answers from the group managers that were actually reached; a core
// whose own cross-core dispatch fails (submission rejected, context
// done before the hop starts) never contributes a fabricated business
// error code to that aggregate. Instead, every such dispatch failure is
// preserved unchanged and joined into the returned error — nil when
// every core was reached, non-nil and wrapping the affected cores'
// original errors otherwise.
func (rt *Router) ListGroups(ctx context.Context) (kerr.Kafka, []groupmgr.ListedGroup, error) {
	n := rt.Executor.NumCores()
	results := make([]listGroupsResult, n)
	dispatchErrs := make([]error, n)

	var eg errgroup.Group
	for c := 0; c < n; c++ {
		core := reactor.CoreID(c)
		eg.Go(func() error {
			stop := rt.Metrics.startRoute("list_groups")
			defer stop()

			res, err := reactor.InvokeOn(ctx, rt.Executor, core, rt.SchedulingGroup, rt.SubmissionGroup,
				func(ctx context.Context) (listGroupsResult, error) {
					mgr := rt.Handle.On(core)
					code, groups := mgr.ListGroups(ctx)
					return listGroupsResult{code: code, groups: groups}, nil
				},
			)
			if err != nil {
				dispatchErrs[core] = fmt.Errorf("list_groups: core %d: %w", core, err)
				return nil
			}
			results[core] = res
			return nil
		})
	}
	_ = eg.Wait()

	aggregate := kerr.KafkaNone
	var groups []groupmgr.ListedGroup
	for _, res := range results {
		if aggregate == kerr.KafkaNone && res.code != kerr.KafkaNone {
			aggregate = res.code
		}
		groups = append(groups, res.groups...)
	}
	return aggregate, groups, errors.Join(dispatchErrs...)
}

// DeleteGroups deletes every group in groups. Groups with no local
// routing decision are resolved immediately with "not coordinator" and
// never touch a cross-core path; the rest are bucketed by owning core
// and dispatched in parallel, with results merged under a mutex as each
// bucket returns.
//
// When a bucket's own cross-core dispatch fails (as opposed to the
// destination's DeleteGroups call returning business results), there is
// no well-formed DeleteGroupsResult to synthesize for that bucket's
// groups — fabricating one with a stand-in Kafka error code would
// misrepresent a transport failure as a coordinator response. Instead
// that bucket contributes no entries to the returned slice, and its
// original error is preserved unchanged and joined into the returned
// error (nil when every bucket was reached). Callers must treat a
// non-nil error as "some requested groups have no result in the slice,"
// not merely advisory.
func (rt *Router) DeleteGroups(ctx context.Context, groups []groupid.ID) ([]groupmgr.DeleteGroupsResult, error) {
	var mu sync.Mutex
	results := make([]groupmgr.DeleteGroupsResult, 0, len(groups))
	var dispatchErrs []error

	buckets := make(map[reactor.CoreID][]groupmgr.DeleteGroupsItem)
	for _, g := range groups {
		pid, core, ok := rt.resolve(g)
		if !ok {
			rt.Metrics.observeNotCoordinator("delete_groups")
			results = append(results, groupmgr.DeleteGroupsResult{Group: g, ErrorCode: kerr.KafkaNotCoordinator})
			continue
		}
		buckets[core] = append(buckets[core], groupmgr.DeleteGroupsItem{PartitionID: pid, Group: g})
	}

	var eg errgroup.Group
	for core, items := range buckets {
		core, items := core, items
		eg.Go(func() error {
			stop := rt.Metrics.startRoute("delete_groups")
			defer stop()

			res, err := reactor.InvokeOn(ctx, rt.Executor, core, rt.SchedulingGroup, rt.SubmissionGroup,
				func(ctx context.Context) ([]groupmgr.DeleteGroupsResult, error) {
					mgr := rt.Handle.On(core)
					return mgr.DeleteGroups(ctx, items), nil
				},
			)

			mu.Lock()
			if err != nil {
				dispatchErrs = append(dispatchErrs, fmt.Errorf("delete_groups: core %d (%d group(s)): %w", core, len(items), err))
			} else {
				results = append(results, res...)
			}
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()

	return results, errors.Join(dispatchErrs...)
}
