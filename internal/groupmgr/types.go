package groupmgr

import (
	"github.com/redpanda-data/grouprouter/internal/groupid"
	"github.com/redpanda-data/grouprouter/internal/kerr"
	"github.com/redpanda-data/grouprouter/internal/partition"
)

// routable is embedded by every Kafka-protocol request type. It supplies
// the group identifier accessor and the writable partition id slot the
// routing primitive needs, without each operation re-declaring the same
// two fields and two methods.
type routable struct {
	Group       groupid.ID
	PartitionID partition.ID
}

// GroupIDOf returns the group identifier this request routes by.
func (r *routable) GroupIDOf() groupid.ID { return r.Group }

// SetPartitionID writes the resolved partition id onto the request; this
// must happen before the cross-core hop.
func (r *routable) SetPartitionID(id partition.ID) { r.PartitionID = id }

// txRoutable is the transactional-operation analogue of routable: the
// "group identifier" carried is actually a transactional id, but the
// shape is identical, so the same two accessors are reused under the
// same field names for a single generic routing primitive to work
// across both vocabularies.
type txRoutable = routable

// --- join_group ---------------------------------------------------------

// JoinGroupProtocol is one of the group protocols a joining member
// supports.
type JoinGroupProtocol struct {
	Name     string
	Metadata []byte
}

type JoinGroupRequest struct {
	routable
	MemberID         string
	ProtocolType     string
	Protocols        []JoinGroupProtocol
	SessionTimeoutMs int32
}

// JoinGroupMember describes a member of the group as seen by the leader.
type JoinGroupMember struct {
	MemberID string
	Metadata []byte
}

type JoinGroupResponse struct {
	Group        groupid.ID
	ErrorCode    kerr.Kafka
	GenerationID int32
	ProtocolName string
	Leader       string
	MemberID     string
	Members      []JoinGroupMember
}

// NewJoinGroupResponseErr synthesizes a failure response from a request
// and an error kind; every response type in this package exposes an
// equivalent (request, error-kind) constructor.
func NewJoinGroupResponseErr(req JoinGroupRequest, code kerr.Kafka) JoinGroupResponse {
	return JoinGroupResponse{Group: req.Group, ErrorCode: code}
}

// --- sync_group ----------------------------------------------------------

type SyncGroupAssignment struct {
	MemberID   string
	Assignment []byte
}

type SyncGroupRequest struct {
	routable
	MemberID     string
	GenerationID int32
	Assignments  []SyncGroupAssignment
}

type SyncGroupResponse struct {
	Group      groupid.ID
	ErrorCode  kerr.Kafka
	Assignment []byte
}

func NewSyncGroupResponseErr(req SyncGroupRequest, code kerr.Kafka) SyncGroupResponse {
	return SyncGroupResponse{Group: req.Group, ErrorCode: code}
}

// --- heartbeat -------------------------------------------------------------

type HeartbeatRequest struct {
	routable
	MemberID     string
	GenerationID int32
}

type HeartbeatResponse struct {
	Group     groupid.ID
	ErrorCode kerr.Kafka
}

func NewHeartbeatResponseErr(req HeartbeatRequest, code kerr.Kafka) HeartbeatResponse {
	return HeartbeatResponse{Group: req.Group, ErrorCode: code}
}

// --- leave_group -----------------------------------------------------------

type LeaveGroupMember struct {
	MemberID string
}

type LeaveGroupRequest struct {
	routable
	Members []LeaveGroupMember
}

type LeaveGroupResponse struct {
	Group     groupid.ID
	ErrorCode kerr.Kafka
}

func NewLeaveGroupResponseErr(req LeaveGroupRequest, code kerr.Kafka) LeaveGroupResponse {
	return LeaveGroupResponse{Group: req.Group, ErrorCode: code}
}

// --- offset_fetch ------------------------------------------------------

type OffsetFetchTopicRequest struct {
	Topic      string
	Partitions []int32
}

type OffsetFetchRequest struct {
	routable
	Topics []OffsetFetchTopicRequest
}

type OffsetFetchPartitionResponse struct {
	Partition int32
	Offset    int64
	Metadata  string
	ErrorCode kerr.Kafka
}

type OffsetFetchTopicResponse struct {
	Topic      string
	Partitions []OffsetFetchPartitionResponse
}

type OffsetFetchResponse struct {
	Group     groupid.ID
	ErrorCode kerr.Kafka
	Topics    []OffsetFetchTopicResponse
}

func NewOffsetFetchResponseErr(req OffsetFetchRequest, code kerr.Kafka) OffsetFetchResponse {
	return OffsetFetchResponse{Group: req.Group, ErrorCode: code}
}

// --- describe_group ----------------------------------------------------

type DescribeGroupRequest struct {
	routable
}

type DescribedMember struct {
	MemberID   string
	Metadata   []byte
	Assignment []byte
}

type DescribeGroupResponse struct {
	Group        groupid.ID
	ErrorCode    kerr.Kafka
	State        string
	ProtocolType string
	Protocol     string
	Members      []DescribedMember
}

func NewDescribeGroupResponseErr(req DescribeGroupRequest, code kerr.Kafka) DescribeGroupResponse {
	return DescribeGroupResponse{Group: req.Group, ErrorCode: code}
}

// --- txn_offset_commit -------------------------------------------------

type TxnOffsetCommitPartition struct {
	Partition int32
	Offset    int64
	Metadata  string
}

type TxnOffsetCommitTopic struct {
	Topic      string
	Partitions []TxnOffsetCommitPartition
}

type TxnOffsetCommitRequest struct {
	txRoutable
	TransactionalID string
	ProducerID      int64
	ProducerEpoch   int16
	Topics          []TxnOffsetCommitTopic
}

type TxnOffsetCommitPartitionResult struct {
	Partition int32
	ErrorCode kerr.Txn
}

type TxnOffsetCommitTopicResult struct {
	Topic      string
	Partitions []TxnOffsetCommitPartitionResult
}

type TxnOffsetCommitResponse struct {
	Group     groupid.ID
	ErrorCode kerr.Txn
	Topics    []TxnOffsetCommitTopicResult
}

func NewTxnOffsetCommitResponseErr(req TxnOffsetCommitRequest, code kerr.Txn) TxnOffsetCommitResponse {
	return TxnOffsetCommitResponse{Group: req.Group, ErrorCode: code}
}

// --- begin_tx / prepare_tx / commit_tx / abort_tx -----------------------
//
// These four share one shape: a transactional id (carried in the
// embedded txRoutable's Group field), a producer id/epoch pair, and a
// Txn error code. Each still gets its own named type, one per distinct
// operation, rather than one shared "TxRequest" — the group manager
// dispatches on the Go method, not on a discriminant field.

type BeginTxRequest struct {
	txRoutable
	TransactionalID      string
	ProducerID           int64
	ProducerEpoch        int16
	TransactionTimeoutMs int32
}

type BeginTxResponse struct {
	Group     groupid.ID
	ErrorCode kerr.Txn
}

func NewBeginTxResponseErr(req BeginTxRequest, code kerr.Txn) BeginTxResponse {
	return BeginTxResponse{Group: req.Group, ErrorCode: code}
}

type PrepareTxRequest struct {
	txRoutable
	TransactionalID string
	ProducerID      int64
	ProducerEpoch   int16
}

type PrepareTxResponse struct {
	Group     groupid.ID
	ErrorCode kerr.Txn
}

func NewPrepareTxResponseErr(req PrepareTxRequest, code kerr.Txn) PrepareTxResponse {
	return PrepareTxResponse{Group: req.Group, ErrorCode: code}
}

type CommitTxRequest struct {
	txRoutable
	TransactionalID string
	ProducerID      int64
	ProducerEpoch   int16
}

type CommitTxResponse struct {
	Group     groupid.ID
	ErrorCode kerr.Txn
}

func NewCommitTxResponseErr(req CommitTxRequest, code kerr.Txn) CommitTxResponse {
	return CommitTxResponse{Group: req.Group, ErrorCode: code}
}

type AbortTxRequest struct {
	txRoutable
	TransactionalID string
	ProducerID      int64
	ProducerEpoch   int16
}

type AbortTxResponse struct {
	Group     groupid.ID
	ErrorCode kerr.Txn
}

func NewAbortTxResponseErr(req AbortTxRequest, code kerr.Txn) AbortTxResponse {
	return AbortTxResponse{Group: req.Group, ErrorCode: code}
}

// --- offset_commit (two-stage) ------------------------------------------

type OffsetCommitPartition struct {
	Partition int32
	Offset    int64
	Metadata  string
}

type OffsetCommitTopic struct {
	Topic      string
	Partitions []OffsetCommitPartition
}

type OffsetCommitRequest struct {
	routable
	MemberID     string
	GenerationID int32
	Topics       []OffsetCommitTopic
}

type OffsetCommitPartitionResult struct {
	Partition int32
	ErrorCode kerr.Kafka
}

type OffsetCommitTopicResult struct {
	Topic      string
	Partitions []OffsetCommitPartitionResult
}

type OffsetCommitResponse struct {
	Group     groupid.ID
	ErrorCode kerr.Kafka
	Topics    []OffsetCommitTopicResult
}

// NewOffsetCommitResponseErr synthesizes the early-failure response used
// when routing fails before dispatch.
func NewOffsetCommitResponseErr(req OffsetCommitRequest, code kerr.Kafka) OffsetCommitResponse {
	return OffsetCommitResponse{Group: req.Group, ErrorCode: code}
}

// --- list_groups ----------------------------------------------------------

// ListedGroup is one entry in a list_groups result.
type ListedGroup struct {
	Group        groupid.ID
	ProtocolType string
}

// --- delete_groups --------------------------------------------------------

// DeleteGroupsItem is one (partition id, group id) pair dispatched to a
// destination core, as built by the router's bucketing step.
type DeleteGroupsItem struct {
	PartitionID partition.ID
	Group       groupid.ID
}

// DeleteGroupsResult is one group's outcome from delete_groups.
type DeleteGroupsResult struct {
	Group     groupid.ID
	ErrorCode kerr.Kafka
}
