package groupmgr

import (
	"context"
	"sync"

	"github.com/redpanda-data/grouprouter/internal/kerr"
	"github.com/redpanda-data/grouprouter/internal/reactor"
)

// Stub is a function-configurable Manager double for router tests: each
// method delegates to the corresponding *Func field if set, and records
// the method's name in Calls so a test can count invocations per
// operation. Stub does not set or consult Core; which core a call
// landed on is observed through the StubHandle entry it was reached by.
//
// When a *Func field is nil, the method returns a response carrying only
// the request's group (every other field zero) and a nil error, which is
// enough for tests that only care whether a call happened.
type Stub struct {
	mu    sync.Mutex
	Core  reactor.CoreID
	Calls []string

	JoinGroupFunc       func(context.Context, JoinGroupRequest) (JoinGroupResponse, error)
	SyncGroupFunc       func(context.Context, SyncGroupRequest) (SyncGroupResponse, error)
	HeartbeatFunc       func(context.Context, HeartbeatRequest) (HeartbeatResponse, error)
	LeaveGroupFunc      func(context.Context, LeaveGroupRequest) (LeaveGroupResponse, error)
	OffsetFetchFunc     func(context.Context, OffsetFetchRequest) (OffsetFetchResponse, error)
	DescribeGroupFunc   func(context.Context, DescribeGroupRequest) (DescribeGroupResponse, error)
	TxnOffsetCommitFunc func(context.Context, TxnOffsetCommitRequest) (TxnOffsetCommitResponse, error)
	BeginTxFunc         func(context.Context, BeginTxRequest) (BeginTxResponse, error)
	PrepareTxFunc       func(context.Context, PrepareTxRequest) (PrepareTxResponse, error)
	CommitTxFunc        func(context.Context, CommitTxRequest) (CommitTxResponse, error)
	AbortTxFunc         func(context.Context, AbortTxRequest) (AbortTxResponse, error)
	OffsetCommitFunc    func(context.Context, OffsetCommitRequest) (<-chan error, <-chan OffsetCommitResponse)
	ListGroupsFunc      func(context.Context) (kerr.Kafka, []ListedGroup)
	DeleteGroupsFunc    func(context.Context, []DeleteGroupsItem) []DeleteGroupsResult
}

func (s *Stub) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, name)
}

// CallCount returns how many times name was invoked.
func (s *Stub) CallCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.Calls {
		if c == name {
			n++
		}
	}
	return n
}

func (s *Stub) JoinGroup(ctx context.Context, req JoinGroupRequest) (JoinGroupResponse, error) {
	s.record("JoinGroup")
	if s.JoinGroupFunc != nil {
		return s.JoinGroupFunc(ctx, req)
	}
	return JoinGroupResponse{Group: req.Group}, nil
}

func (s *Stub) SyncGroup(ctx context.Context, req SyncGroupRequest) (SyncGroupResponse, error) {
	s.record("SyncGroup")
	if s.SyncGroupFunc != nil {
		return s.SyncGroupFunc(ctx, req)
	}
	return SyncGroupResponse{Group: req.Group}, nil
}

func (s *Stub) Heartbeat(ctx context.Context, req HeartbeatRequest) (HeartbeatResponse, error) {
	s.record("Heartbeat")
	if s.HeartbeatFunc != nil {
		return s.HeartbeatFunc(ctx, req)
	}
	return HeartbeatResponse{Group: req.Group}, nil
}

func (s *Stub) LeaveGroup(ctx context.Context, req LeaveGroupRequest) (LeaveGroupResponse, error) {
	s.record("LeaveGroup")
	if s.LeaveGroupFunc != nil {
		return s.LeaveGroupFunc(ctx, req)
	}
	return LeaveGroupResponse{Group: req.Group}, nil
}

func (s *Stub) OffsetFetch(ctx context.Context, req OffsetFetchRequest) (OffsetFetchResponse, error) {
	s.record("OffsetFetch")
	if s.OffsetFetchFunc != nil {
		return s.OffsetFetchFunc(ctx, req)
	}
	return OffsetFetchResponse{Group: req.Group}, nil
}

func (s *Stub) DescribeGroup(ctx context.Context, req DescribeGroupRequest) (DescribeGroupResponse, error) {
	s.record("DescribeGroup")
	if s.DescribeGroupFunc != nil {
		return s.DescribeGroupFunc(ctx, req)
	}
	return DescribeGroupResponse{Group: req.Group}, nil
}

func (s *Stub) TxnOffsetCommit(ctx context.Context, req TxnOffsetCommitRequest) (TxnOffsetCommitResponse, error) {
	s.record("TxnOffsetCommit")
	if s.TxnOffsetCommitFunc != nil {
		return s.TxnOffsetCommitFunc(ctx, req)
	}
	return TxnOffsetCommitResponse{Group: req.Group}, nil
}

func (s *Stub) BeginTx(ctx context.Context, req BeginTxRequest) (BeginTxResponse, error) {
	s.record("BeginTx")
	if s.BeginTxFunc != nil {
		return s.BeginTxFunc(ctx, req)
	}
	return BeginTxResponse{Group: req.Group}, nil
}

func (s *Stub) PrepareTx(ctx context.Context, req PrepareTxRequest) (PrepareTxResponse, error) {
	s.record("PrepareTx")
	if s.PrepareTxFunc != nil {
		return s.PrepareTxFunc(ctx, req)
	}
	return PrepareTxResponse{Group: req.Group}, nil
}

func (s *Stub) CommitTx(ctx context.Context, req CommitTxRequest) (CommitTxResponse, error) {
	s.record("CommitTx")
	if s.CommitTxFunc != nil {
		return s.CommitTxFunc(ctx, req)
	}
	return CommitTxResponse{Group: req.Group}, nil
}

func (s *Stub) AbortTx(ctx context.Context, req AbortTxRequest) (AbortTxResponse, error) {
	s.record("AbortTx")
	if s.AbortTxFunc != nil {
		return s.AbortTxFunc(ctx, req)
	}
	return AbortTxResponse{Group: req.Group}, nil
}

func (s *Stub) OffsetCommit(ctx context.Context, req OffsetCommitRequest) (<-chan error, <-chan OffsetCommitResponse) {
	s.record("OffsetCommit")
	if s.OffsetCommitFunc != nil {
		return s.OffsetCommitFunc(ctx, req)
	}
	dispatched := make(chan error, 1)
	committed := make(chan OffsetCommitResponse, 1)
	dispatched <- nil
	committed <- OffsetCommitResponse{Group: req.Group}
	return dispatched, committed
}

func (s *Stub) ListGroups(ctx context.Context) (kerr.Kafka, []ListedGroup) {
	s.record("ListGroups")
	if s.ListGroupsFunc != nil {
		return s.ListGroupsFunc(ctx)
	}
	return kerr.KafkaNone, nil
}

func (s *Stub) DeleteGroups(ctx context.Context, items []DeleteGroupsItem) []DeleteGroupsResult {
	s.record("DeleteGroups")
	if s.DeleteGroupsFunc != nil {
		return s.DeleteGroupsFunc(ctx, items)
	}
	results := make([]DeleteGroupsResult, len(items))
	for i, item := range items {
		results[i] = DeleteGroupsResult{Group: item.Group}
	}
	return results
}

// StubHandle is a Handle backed by a fixed map of core -> *Stub, used to
// assert which core a routed call landed on.
type StubHandle map[reactor.CoreID]*Stub

// On implements Handle.
func (h StubHandle) On(core reactor.CoreID) Manager {
	s, ok := h[core]
	if !ok {
		panic("groupmgr: StubHandle has no stub for core")
	}
	return s
}
