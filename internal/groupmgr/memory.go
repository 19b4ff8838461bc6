package groupmgr

import (
	"context"
	"sync"
	"time"

	"github.com/redpanda-data/grouprouter/internal/groupid"
	"github.com/redpanda-data/grouprouter/internal/kerr"
)

// groupEntry is the in-memory bookkeeping InMemory keeps per group —
// deliberately minimal: it exists to make the demo process and
// integration tests observable, not to model a real rebalance protocol.
type groupEntry struct {
	protocolType string
	generation   int32
	members      map[string]struct{}
	offsets      map[string]map[int32]int64 // topic -> partition -> offset
}

// InMemory is a deterministic, in-process stand-in for a real group
// manager, built behind the same pluggable-backend-behind-an-interface
// shape as Manager itself. It is not a production implementation: no
// rebalance protocol, no durable log, no member expiry.
//
// InMemory is safe for concurrent use; each instance represents one
// core's shard of groups, one instance per execution core.
type InMemory struct {
	mu     sync.Mutex
	groups map[groupid.ID]*groupEntry

	// Loading, when true, makes ListGroups report Kafka error code 14
	// (offsets load in progress) and no groups instead of success,
	// modeling a core that has not yet replayed its portion of the
	// offsets topic.
	Loading bool

	// DispatchDelay and CommitDelay simulate the latency between
	// "accepted for replication" and "durably replicated" in
	// OffsetCommit's two-stage protocol.
	DispatchDelay time.Duration
	CommitDelay   time.Duration
}

// NewInMemory returns an empty InMemory group manager.
func NewInMemory() *InMemory {
	return &InMemory{groups: make(map[groupid.ID]*groupEntry)}
}

func (m *InMemory) entry(group groupid.ID) *groupEntry {
	e, ok := m.groups[group]
	if !ok {
		e = &groupEntry{members: make(map[string]struct{}), offsets: make(map[string]map[int32]int64)}
		m.groups[group] = e
	}
	return e
}

func (m *InMemory) JoinGroup(ctx context.Context, req JoinGroupRequest) (JoinGroupResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entry(req.Group)
	e.protocolType = req.ProtocolType
	e.generation++
	e.members[req.MemberID] = struct{}{}

	return JoinGroupResponse{
		Group:        req.Group,
		ErrorCode:    kerr.KafkaNone,
		GenerationID: e.generation,
		MemberID:     req.MemberID,
	}, nil
}

func (m *InMemory) SyncGroup(ctx context.Context, req SyncGroupRequest) (SyncGroupResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entry(req.Group)
	if e.generation != req.GenerationID {
		return SyncGroupResponse{Group: req.Group, ErrorCode: kerr.Kafka(22) /* illegal generation */}, nil
	}

	for _, a := range req.Assignments {
		if a.MemberID == req.MemberID {
			return SyncGroupResponse{Group: req.Group, ErrorCode: kerr.KafkaNone, Assignment: a.Assignment}, nil
		}
	}
	return SyncGroupResponse{Group: req.Group, ErrorCode: kerr.KafkaNone}, nil
}

func (m *InMemory) Heartbeat(ctx context.Context, req HeartbeatRequest) (HeartbeatResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entry(req.Group)
	if _, ok := e.members[req.MemberID]; !ok {
		return HeartbeatResponse{Group: req.Group, ErrorCode: kerr.Kafka(25) /* unknown member id */}, nil
	}
	return HeartbeatResponse{Group: req.Group, ErrorCode: kerr.KafkaNone}, nil
}

func (m *InMemory) LeaveGroup(ctx context.Context, req LeaveGroupRequest) (LeaveGroupResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entry(req.Group)
	for _, mem := range req.Members {
		delete(e.members, mem.MemberID)
	}
	return LeaveGroupResponse{Group: req.Group, ErrorCode: kerr.KafkaNone}, nil
}

func (m *InMemory) OffsetFetch(ctx context.Context, req OffsetFetchRequest) (OffsetFetchResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entry(req.Group)
	resp := OffsetFetchResponse{Group: req.Group, ErrorCode: kerr.KafkaNone}
	for _, t := range req.Topics {
		topicResp := OffsetFetchTopicResponse{Topic: t.Topic}
		for _, p := range t.Partitions {
			offset, ok := e.offsets[t.Topic][p]
			if !ok {
				offset = -1
			}
			topicResp.Partitions = append(topicResp.Partitions, OffsetFetchPartitionResponse{
				Partition: p,
				Offset:    offset,
				ErrorCode: kerr.KafkaNone,
			})
		}
		resp.Topics = append(resp.Topics, topicResp)
	}
	return resp, nil
}

func (m *InMemory) DescribeGroup(ctx context.Context, req DescribeGroupRequest) (DescribeGroupResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entry(req.Group)
	resp := DescribeGroupResponse{
		Group:        req.Group,
		ErrorCode:    kerr.KafkaNone,
		ProtocolType: e.protocolType,
		State:        "Stable",
	}
	for member := range e.members {
		resp.Members = append(resp.Members, DescribedMember{MemberID: member})
	}
	return resp, nil
}

func (m *InMemory) TxnOffsetCommit(ctx context.Context, req TxnOffsetCommitRequest) (TxnOffsetCommitResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entry(req.Group)
	resp := TxnOffsetCommitResponse{Group: req.Group, ErrorCode: kerr.TxnNone}
	for _, t := range req.Topics {
		topicResult := TxnOffsetCommitTopicResult{Topic: t.Topic}
		if _, ok := e.offsets[t.Topic]; !ok {
			e.offsets[t.Topic] = make(map[int32]int64)
		}
		for _, p := range t.Partitions {
			e.offsets[t.Topic][p.Partition] = p.Offset
			topicResult.Partitions = append(topicResult.Partitions, TxnOffsetCommitPartitionResult{
				Partition: p.Partition,
				ErrorCode: kerr.TxnNone,
			})
		}
		resp.Topics = append(resp.Topics, topicResult)
	}
	return resp, nil
}

func (m *InMemory) BeginTx(ctx context.Context, req BeginTxRequest) (BeginTxResponse, error) {
	return BeginTxResponse{Group: req.Group, ErrorCode: kerr.TxnNone}, nil
}

func (m *InMemory) PrepareTx(ctx context.Context, req PrepareTxRequest) (PrepareTxResponse, error) {
	return PrepareTxResponse{Group: req.Group, ErrorCode: kerr.TxnNone}, nil
}

func (m *InMemory) CommitTx(ctx context.Context, req CommitTxRequest) (CommitTxResponse, error) {
	return CommitTxResponse{Group: req.Group, ErrorCode: kerr.TxnNone}, nil
}

func (m *InMemory) AbortTx(ctx context.Context, req AbortTxRequest) (AbortTxResponse, error) {
	return AbortTxResponse{Group: req.Group, ErrorCode: kerr.TxnNone}, nil
}

// OffsetCommit implements the two-stage commit: dispatched resolves
// after DispatchDelay, committed after DispatchDelay+CommitDelay,
// modeling "accepted" versus "durably replicated."
func (m *InMemory) OffsetCommit(ctx context.Context, req OffsetCommitRequest) (<-chan error, <-chan OffsetCommitResponse) {
	dispatched := make(chan error, 1)
	committed := make(chan OffsetCommitResponse, 1)

	go func() {
		select {
		case <-time.After(m.DispatchDelay):
		case <-ctx.Done():
			dispatched <- ctx.Err()
			committed <- OffsetCommitResponse{Group: req.Group, ErrorCode: kerr.Kafka(7) /* request timed out */}
			return
		}
		dispatched <- nil

		select {
		case <-time.After(m.CommitDelay):
		case <-ctx.Done():
			committed <- OffsetCommitResponse{Group: req.Group, ErrorCode: kerr.Kafka(7)}
			return
		}

		m.mu.Lock()
		e := m.entry(req.Group)
		resp := OffsetCommitResponse{Group: req.Group, ErrorCode: kerr.KafkaNone}
		for _, t := range req.Topics {
			if _, ok := e.offsets[t.Topic]; !ok {
				e.offsets[t.Topic] = make(map[int32]int64)
			}
			topicResult := OffsetCommitTopicResult{Topic: t.Topic}
			for _, p := range t.Partitions {
				e.offsets[t.Topic][p.Partition] = p.Offset
				topicResult.Partitions = append(topicResult.Partitions, OffsetCommitPartitionResult{
					Partition: p.Partition,
					ErrorCode: kerr.KafkaNone,
				})
			}
			resp.Topics = append(resp.Topics, topicResult)
		}
		m.mu.Unlock()

		committed <- resp
	}()

	return dispatched, committed
}

func (m *InMemory) ListGroups(ctx context.Context) (kerr.Kafka, []ListedGroup) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Loading {
		return kerr.Kafka(14) /* offsets load in progress */, nil
	}

	groups := make([]ListedGroup, 0, len(m.groups))
	for g, e := range m.groups {
		groups = append(groups, ListedGroup{Group: g, ProtocolType: e.protocolType})
	}
	return kerr.KafkaNone, groups
}

func (m *InMemory) DeleteGroups(ctx context.Context, items []DeleteGroupsItem) []DeleteGroupsResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	results := make([]DeleteGroupsResult, len(items))
	for i, item := range items {
		delete(m.groups, item.Group)
		results[i] = DeleteGroupsResult{Group: item.Group, ErrorCode: kerr.KafkaNone}
	}
	return results
}
