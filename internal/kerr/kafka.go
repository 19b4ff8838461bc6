package kerr

import "github.com/Shopify/sarama"

// Kafka is the public, wire-format Kafka protocol error code, reused
// directly from sarama (github.com/Shopify/sarama.KError) rather than a
// hand-rolled enum, so the router emits exactly the numeric codes real
// Kafka clients already know how to interpret.
type Kafka = sarama.KError

// KafkaNone is the Kafka "no error" code.
const KafkaNone Kafka = sarama.ErrNoError

// KafkaNotCoordinator is the error kind emitted by every Kafka-protocol
// routed operation when no coordinator mapping can be resolved locally.
const KafkaNotCoordinator Kafka = sarama.ErrNotCoordinatorForConsumer
