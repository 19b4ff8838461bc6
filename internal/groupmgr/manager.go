package groupmgr

import (
	"context"

	"github.com/redpanda-data/grouprouter/internal/kerr"
	"github.com/redpanda-data/grouprouter/internal/reactor"
)

// Manager is the external collaborator the router dispatches to: one
// instance per execution core, holding the authoritative state for
// every group whose coordinator partition that core owns.
//
// The router never implements Manager itself — join/sync/heartbeat
// protocol handling, rebalance generations, member expiry, and durable
// offset storage belong to a production implementation this module
// does not provide.
type Manager interface {
	JoinGroup(ctx context.Context, req JoinGroupRequest) (JoinGroupResponse, error)
	SyncGroup(ctx context.Context, req SyncGroupRequest) (SyncGroupResponse, error)
	Heartbeat(ctx context.Context, req HeartbeatRequest) (HeartbeatResponse, error)
	LeaveGroup(ctx context.Context, req LeaveGroupRequest) (LeaveGroupResponse, error)
	OffsetFetch(ctx context.Context, req OffsetFetchRequest) (OffsetFetchResponse, error)
	DescribeGroup(ctx context.Context, req DescribeGroupRequest) (DescribeGroupResponse, error)
	TxnOffsetCommit(ctx context.Context, req TxnOffsetCommitRequest) (TxnOffsetCommitResponse, error)
	BeginTx(ctx context.Context, req BeginTxRequest) (BeginTxResponse, error)
	PrepareTx(ctx context.Context, req PrepareTxRequest) (PrepareTxResponse, error)
	CommitTx(ctx context.Context, req CommitTxRequest) (CommitTxResponse, error)
	AbortTx(ctx context.Context, req AbortTxRequest) (AbortTxResponse, error)

	// OffsetCommit is a two-stage commit: dispatched resolves once the
	// request is accepted and scheduled for replication, committed
	// resolves once replication reaches the required durability. The
	// implementer must guarantee dispatched resolves no later than
	// committed.
	OffsetCommit(ctx context.Context, req OffsetCommitRequest) (dispatched <-chan error, committed <-chan OffsetCommitResponse)

	// ListGroups reports this core's portion of a list_groups fan-out.
	ListGroups(ctx context.Context) (kerr.Kafka, []ListedGroup)

	// DeleteGroups handles the destination-core half of a delete_groups
	// fan-out: one result per requested group.
	DeleteGroups(ctx context.Context, items []DeleteGroupsItem) []DeleteGroupsResult
}

// Handle is the sharded accessor the router uses to reach the Manager
// instance owned by a specific core.
type Handle interface {
	On(core reactor.CoreID) Manager
}

// HandleFunc adapts a plain function to Handle.
type HandleFunc func(core reactor.CoreID) Manager

// On implements Handle.
func (f HandleFunc) On(core reactor.CoreID) Manager {
	return f(core)
}
