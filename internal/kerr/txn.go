package kerr

// Txn is the cluster-internal transaction-coordinator error code — a
// vocabulary distinct from the public Kafka protocol error codes in
// kafka.go, used by the transactional operations (begin_tx, prepare_tx,
// commit_tx, abort_tx, txn_offset_commit).
//
// This is intentionally a small local type rather than a third-party
// dependency: Redpanda's internal transaction-coordinator error space is
// broker-private wire format, never published as a reusable Go module —
// see DESIGN.md for the full justification.
type Txn int32

const (
	// TxnNone indicates success.
	TxnNone Txn = 0

	// TxnNotCoordinator is the cluster-internal "not coordinator" code,
	// emitted by every transactional routed operation when no
	// coordinator mapping can be resolved locally.
	TxnNotCoordinator Txn = 16

	// TxnInvalidProducerIDMapping indicates the producer id presented by
	// a txn_offset_commit does not match an open transaction.
	TxnInvalidProducerIDMapping Txn = 49

	// TxnInvalidProducerEpoch indicates a stale producer epoch.
	TxnInvalidProducerEpoch Txn = 47

	// TxnInvalidState indicates the transaction is not in a state that
	// allows the requested operation.
	TxnInvalidState Txn = 48
)

// String renders a Txn code for logs.
func (t Txn) String() string {
	switch t {
	case TxnNone:
		return "NONE"
	case TxnNotCoordinator:
		return "NOT_COORDINATOR"
	case TxnInvalidProducerIDMapping:
		return "INVALID_PRODUCER_ID_MAPPING"
	case TxnInvalidProducerEpoch:
		return "INVALID_PRODUCER_EPOCH"
	case TxnInvalidState:
		return "INVALID_TXN_STATE"
	default:
		return "UNKNOWN"
	}
}
