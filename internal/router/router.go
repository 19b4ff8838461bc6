package router

import (
	"context"

	"go.uber.org/zap"

	"github.com/redpanda-data/grouprouter/internal/groupid"
	"github.com/redpanda-data/grouprouter/internal/groupmgr"
	"github.com/redpanda-data/grouprouter/internal/mapper"
	"github.com/redpanda-data/grouprouter/internal/partition"
	"github.com/redpanda-data/grouprouter/internal/reactor"
	"github.com/redpanda-data/grouprouter/internal/shardtable"
)

// Router is constructed once per core. It holds no mutable state of its
// own; Mapper and Shards are this core's local, read-only views, and
// Handle, Executor, SchedulingGroup, and SubmissionGroup are shared
// process-wide references used to reach every other core.
type Router struct {
	Core reactor.CoreID

	Mapper mapper.Mapper
	Shards *shardtable.Table
	Handle groupmgr.Handle

	Executor        *reactor.Executor
	SchedulingGroup *reactor.SchedulingGroup
	SubmissionGroup *reactor.SubmissionGroup

	Metrics *Metrics
	Log     *zap.Logger
}

// New constructs a Router for the given core. log and metrics may be
// nil; a nop logger and freshly registered metrics are used in that
// case so tests can construct a Router without wiring either.
func New(core reactor.CoreID, m mapper.Mapper, shards *shardtable.Table, handle groupmgr.Handle, ex *reactor.Executor, sg *reactor.SchedulingGroup, subg *reactor.SubmissionGroup, metrics *Metrics, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Router{
		Core:            core,
		Mapper:          m,
		Shards:          shards,
		Handle:          handle,
		Executor:        ex,
		SchedulingGroup: sg,
		SubmissionGroup: subg,
		Metrics:         metrics,
		Log:             log,
	}
}

// requestPtr is the capability every routed request type must offer: a
// group identifier accessor and a writable partition id slot, expressed
// as a constraint on a pointer to the request type T (the "PT *T"
// pattern) since Go methods cannot add type parameters of their own —
// groupmgr's routable embeds exactly these two methods into every
// request type.
type requestPtr[T any] interface {
	*T
	GroupIDOf() groupid.ID
	SetPartitionID(partition.ID)
}

// resolve performs the coordinator lookup: a mapper lookup followed by
// a shard-table lookup. Both must resolve for routing to succeed.
func (rt *Router) resolve(group groupid.ID) (partition.ID, reactor.CoreID, bool) {
	pid, ok := rt.Mapper.PartitionFor(group)
	if !ok {
		return partition.ID{}, 0, false
	}

	core, ok := rt.Shards.CoreFor(pid)
	if !ok {
		return partition.ID{}, 0, false
	}

	return pid, core, true
}

// Route is the generic routing primitive shared by every single-group
// operation's thin wrapper in ops.go.
//
// failure synthesizes the "not coordinator" response for req when no
// routing decision can be produced; call invokes the bound group-
// manager method on the destination core once a decision is resolved.
func Route[T any, PT requestPtr[T], R any](
	ctx context.Context,
	rt *Router,
	op string,
	req T,
	failure func(T) R,
	call func(context.Context, groupmgr.Manager, T) (R, error),
) (R, error) {
	pt := PT(&req)

	pid, core, ok := rt.resolve(pt.GroupIDOf())
	if !ok {
		rt.Metrics.observeNotCoordinator(op)
		return failure(req), nil
	}
	pt.SetPartitionID(pid)

	stop := rt.Metrics.startRoute(op)
	defer stop()

	return reactor.InvokeOn(ctx, rt.Executor, core, rt.SchedulingGroup, rt.SubmissionGroup,
		func(ctx context.Context) (R, error) {
			mgr := rt.Handle.On(core)
			return call(ctx, mgr, req)
		},
	)
}
