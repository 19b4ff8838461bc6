package router

import (
	"context"

	"github.com/redpanda-data/grouprouter/internal/groupmgr"
	"github.com/redpanda-data/grouprouter/internal/kerr"
	"github.com/redpanda-data/grouprouter/internal/reactor"
)

// pendingCommit carries the destination core's (dispatched, committed)
// signal pair back across the initial cross-core hop, so the rest of
// the choreography (steps 5-6) can proceed without holding that hop's
// goroutine open.
type pendingCommit struct {
	dispatched <-chan error
	committed  <-chan groupmgr.OffsetCommitResponse
}

// OffsetCommit implements the two-stage offset-commit choreography: a
// dispatched signal that resolves once the commit has been accepted for
// processing, followed later by a committed signal carrying the final
// outcome.
//
// When routing itself cannot produce a destination (no coordinator
// mapping), both signals resolve immediately: dispatched successfully,
// committed carrying the synthesized "not coordinator" response.
//
// On the happy path, a brief cross-core hop starts the destination's
// two-stage commit and retrieves its signal pair without blocking the
// destination core on the full commit — the orchestration in the
// goroutine below then waits out that pair on the caller's side. The
// dispatched notification is posted back to the source core as a
// fire-and-forget task; this goroutine waits for that task to actually
// run before reading the committed signal, which guarantees dispatched
// resolves no later than committed instead of merely hoping the
// scheduler cooperates.
//
// If the cross-core hop itself fails to reach the destination at all
// (the submission group rejects it, or ctx is done before it starts),
// that is a router-originated dispatch failure, not a business outcome
// from the group manager — there is no well-formed OffsetCommitResponse
// to synthesize for it, and fabricating one with a stand-in Kafka error
// code would misrepresent a transport failure as a coordinator
// response. Instead dispatched carries the real error unchanged and
// committed is closed without a value, signaling "no commit outcome
// exists for this request"; callers must not treat a closed, unread
// committed channel as success.
func (rt *Router) OffsetCommit(ctx context.Context, req groupmgr.OffsetCommitRequest) (<-chan error, <-chan groupmgr.OffsetCommitResponse) {
	dispatched := make(chan error, 1)
	committed := make(chan groupmgr.OffsetCommitResponse, 1)

	pid, core, ok := rt.resolve(req.GroupIDOf())
	if !ok {
		rt.Metrics.observeNotCoordinator("offset_commit")
		dispatched <- nil
		committed <- groupmgr.NewOffsetCommitResponseErr(req, kerr.KafkaNotCoordinator)
		return dispatched, committed
	}
	req.SetPartitionID(pid)

	stop := rt.Metrics.startRoute("offset_commit")

	pending, err := reactor.InvokeOn(ctx, rt.Executor, core, rt.SchedulingGroup, rt.SubmissionGroup,
		func(ctx context.Context) (pendingCommit, error) {
			mgr := rt.Handle.On(core)
			d, c := mgr.OffsetCommit(ctx, req)
			return pendingCommit{dispatched: d, committed: c}, nil
		},
	)
	if err != nil {
		stop()
		dispatched <- err
		close(committed)
		return dispatched, committed
	}

	go func() {
		destErr := <-pending.dispatched

		done := make(chan struct{})
		rt.Executor.SubmitTo(rt.Core, func() {
			dispatched <- destErr
			close(done)
		})
		<-done

		resp := <-pending.committed
		stop()
		committed <- resp
	}()

	return dispatched, committed
}
