// Package kerr holds the two disjoint error-kind taxonomies the router
// originates: the public Kafka protocol error code, and the
// cluster-internal transaction-coordinator error code.
//
// These are kept as distinct Go types on purpose. A function that wants
// to synthesize a "not coordinator" response for a Kafka-protocol
// operation takes a Kafka; one for a transactional operation takes a
// Txn. Neither assigns to the other, so mixing these vocabularies is a
// compile error, not a code review finding.
package kerr
