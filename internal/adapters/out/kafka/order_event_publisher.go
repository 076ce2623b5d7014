// Package kafka publishes order lifecycle events to a Kafka topic. Events are
// emitted after the originating transaction commits, so consumers may see an
// event at-least-once but never for a state the database does not have.
package kafka

import (
	"context"
	"encoding/json"

	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"

	"github.com/IBM/sarama"
)

// KafkaOrderEventPublisher implements OrderEventPublisher on a synchronous
// sarama producer. Synchronous delivery keeps the failure visible to the
// caller instead of a background error channel.
type KafkaOrderEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaOrderEventPublisher creates a publisher writing to the given topic.
func NewKafkaOrderEventPublisher(producer sarama.SyncProducer, topic string) (*KafkaOrderEventPublisher, error) {
	if producer == nil {
		return nil, errs.NewValueIsRequiredError("producer")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}
	return &KafkaOrderEventPublisher{producer: producer, topic: topic}, nil
}

// NewSyncProducer builds a sarama producer configured for publishing order
// events: full acknowledgement and bounded retries.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	return sarama.NewSyncProducer(brokers, config)
}

// PublishOrderStateChanged emits one state-change event, keyed by order ID so
// a single order's events stay in partition order.
func (p *KafkaOrderEventPublisher) PublishOrderStateChanged(
	ctx context.Context, event ports.OrderStateChangedEvent,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

// Close shuts down the underlying producer.
func (p *KafkaOrderEventPublisher) Close() error {
	return p.producer.Close()
}
