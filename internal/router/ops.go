package router

import (
	"context"

	"github.com/redpanda-data/grouprouter/internal/groupmgr"
	"github.com/redpanda-data/grouprouter/internal/kerr"
)

// Each wrapper below is the generic routing primitive instantiated for
// one of the eleven single-group operations. The failure closure picks
// the error vocabulary the operation belongs to: Kafka-protocol
// operations synthesize kerr.KafkaNotCoordinator, transactional
// operations synthesize kerr.TxnNotCoordinator — never the other.

func (rt *Router) JoinGroup(ctx context.Context, req groupmgr.JoinGroupRequest) (groupmgr.JoinGroupResponse, error) {
	return Route[groupmgr.JoinGroupRequest, *groupmgr.JoinGroupRequest, groupmgr.JoinGroupResponse](
		ctx, rt, "join_group", req,
		func(r groupmgr.JoinGroupRequest) groupmgr.JoinGroupResponse {
			return groupmgr.NewJoinGroupResponseErr(r, kerr.KafkaNotCoordinator)
		},
		func(ctx context.Context, mgr groupmgr.Manager, r groupmgr.JoinGroupRequest) (groupmgr.JoinGroupResponse, error) {
			return mgr.JoinGroup(ctx, r)
		},
	)
}

func (rt *Router) SyncGroup(ctx context.Context, req groupmgr.SyncGroupRequest) (groupmgr.SyncGroupResponse, error) {
	return Route[groupmgr.SyncGroupRequest, *groupmgr.SyncGroupRequest, groupmgr.SyncGroupResponse](
		ctx, rt, "sync_group", req,
		func(r groupmgr.SyncGroupRequest) groupmgr.SyncGroupResponse {
			return groupmgr.NewSyncGroupResponseErr(r, kerr.KafkaNotCoordinator)
		},
		func(ctx context.Context, mgr groupmgr.Manager, r groupmgr.SyncGroupRequest) (groupmgr.SyncGroupResponse, error) {
			return mgr.SyncGroup(ctx, r)
		},
	)
}

func (rt *Router) Heartbeat(ctx context.Context, req groupmgr.HeartbeatRequest) (groupmgr.HeartbeatResponse, error) {
	return Route[groupmgr.HeartbeatRequest, *groupmgr.HeartbeatRequest, groupmgr.HeartbeatResponse](
		ctx, rt, "heartbeat", req,
		func(r groupmgr.HeartbeatRequest) groupmgr.HeartbeatResponse {
			return groupmgr.NewHeartbeatResponseErr(r, kerr.KafkaNotCoordinator)
		},
		func(ctx context.Context, mgr groupmgr.Manager, r groupmgr.HeartbeatRequest) (groupmgr.HeartbeatResponse, error) {
			return mgr.Heartbeat(ctx, r)
		},
	)
}

func (rt *Router) LeaveGroup(ctx context.Context, req groupmgr.LeaveGroupRequest) (groupmgr.LeaveGroupResponse, error) {
	return Route[groupmgr.LeaveGroupRequest, *groupmgr.LeaveGroupRequest, groupmgr.LeaveGroupResponse](
		ctx, rt, "leave_group", req,
		func(r groupmgr.LeaveGroupRequest) groupmgr.LeaveGroupResponse {
			return groupmgr.NewLeaveGroupResponseErr(r, kerr.KafkaNotCoordinator)
		},
		func(ctx context.Context, mgr groupmgr.Manager, r groupmgr.LeaveGroupRequest) (groupmgr.LeaveGroupResponse, error) {
			return mgr.LeaveGroup(ctx, r)
		},
	)
}

func (rt *Router) OffsetFetch(ctx context.Context, req groupmgr.OffsetFetchRequest) (groupmgr.OffsetFetchResponse, error) {
	return Route[groupmgr.OffsetFetchRequest, *groupmgr.OffsetFetchRequest, groupmgr.OffsetFetchResponse](
		ctx, rt, "offset_fetch", req,
		func(r groupmgr.OffsetFetchRequest) groupmgr.OffsetFetchResponse {
			return groupmgr.NewOffsetFetchResponseErr(r, kerr.KafkaNotCoordinator)
		},
		func(ctx context.Context, mgr groupmgr.Manager, r groupmgr.OffsetFetchRequest) (groupmgr.OffsetFetchResponse, error) {
			return mgr.OffsetFetch(ctx, r)
		},
	)
}

func (rt *Router) DescribeGroup(ctx context.Context, req groupmgr.DescribeGroupRequest) (groupmgr.DescribeGroupResponse, error) {
	return Route[groupmgr.DescribeGroupRequest, *groupmgr.DescribeGroupRequest, groupmgr.DescribeGroupResponse](
		ctx, rt, "describe_group", req,
		func(r groupmgr.DescribeGroupRequest) groupmgr.DescribeGroupResponse {
			return groupmgr.NewDescribeGroupResponseErr(r, kerr.KafkaNotCoordinator)
		},
		func(ctx context.Context, mgr groupmgr.Manager, r groupmgr.DescribeGroupRequest) (groupmgr.DescribeGroupResponse, error) {
			return mgr.DescribeGroup(ctx, r)
		},
	)
}

func (rt *Router) TxnOffsetCommit(ctx context.Context, req groupmgr.TxnOffsetCommitRequest) (groupmgr.TxnOffsetCommitResponse, error) {
	return Route[groupmgr.TxnOffsetCommitRequest, *groupmgr.TxnOffsetCommitRequest, groupmgr.TxnOffsetCommitResponse](
		ctx, rt, "txn_offset_commit", req,
		func(r groupmgr.TxnOffsetCommitRequest) groupmgr.TxnOffsetCommitResponse {
			return groupmgr.NewTxnOffsetCommitResponseErr(r, kerr.TxnNotCoordinator)
		},
		func(ctx context.Context, mgr groupmgr.Manager, r groupmgr.TxnOffsetCommitRequest) (groupmgr.TxnOffsetCommitResponse, error) {
			return mgr.TxnOffsetCommit(ctx, r)
		},
	)
}

func (rt *Router) BeginTx(ctx context.Context, req groupmgr.BeginTxRequest) (groupmgr.BeginTxResponse, error) {
	return Route[groupmgr.BeginTxRequest, *groupmgr.BeginTxRequest, groupmgr.BeginTxResponse](
		ctx, rt, "begin_tx", req,
		func(r groupmgr.BeginTxRequest) groupmgr.BeginTxResponse {
			return groupmgr.NewBeginTxResponseErr(r, kerr.TxnNotCoordinator)
		},
		func(ctx context.Context, mgr groupmgr.Manager, r groupmgr.BeginTxRequest) (groupmgr.BeginTxResponse, error) {
			return mgr.BeginTx(ctx, r)
		},
	)
}

func (rt *Router) PrepareTx(ctx context.Context, req groupmgr.PrepareTxRequest) (groupmgr.PrepareTxResponse, error) {
	return Route[groupmgr.PrepareTxRequest, *groupmgr.PrepareTxRequest, groupmgr.PrepareTxResponse](
		ctx, rt, "prepare_tx", req,
		func(r groupmgr.PrepareTxRequest) groupmgr.PrepareTxResponse {
			return groupmgr.NewPrepareTxResponseErr(r, kerr.TxnNotCoordinator)
		},
		func(ctx context.Context, mgr groupmgr.Manager, r groupmgr.PrepareTxRequest) (groupmgr.PrepareTxResponse, error) {
			return mgr.PrepareTx(ctx, r)
		},
	)
}

func (rt *Router) CommitTx(ctx context.Context, req groupmgr.CommitTxRequest) (groupmgr.CommitTxResponse, error) {
	return Route[groupmgr.CommitTxRequest, *groupmgr.CommitTxRequest, groupmgr.CommitTxResponse](
		ctx, rt, "commit_tx", req,
		func(r groupmgr.CommitTxRequest) groupmgr.CommitTxResponse {
			return groupmgr.NewCommitTxResponseErr(r, kerr.TxnNotCoordinator)
		},
		func(ctx context.Context, mgr groupmgr.Manager, r groupmgr.CommitTxRequest) (groupmgr.CommitTxResponse, error) {
			return mgr.CommitTx(ctx, r)
		},
	)
}

func (rt *Router) AbortTx(ctx context.Context, req groupmgr.AbortTxRequest) (groupmgr.AbortTxResponse, error) {
	return Route[groupmgr.AbortTxRequest, *groupmgr.AbortTxRequest, groupmgr.AbortTxResponse](
		ctx, rt, "abort_tx", req,
		func(r groupmgr.AbortTxRequest) groupmgr.AbortTxResponse {
			return groupmgr.NewAbortTxResponseErr(r, kerr.TxnNotCoordinator)
		},
		func(ctx context.Context, mgr groupmgr.Manager, r groupmgr.AbortTxRequest) (groupmgr.AbortTxResponse, error) {
			return mgr.AbortTx(ctx, r)
		},
	)
}
