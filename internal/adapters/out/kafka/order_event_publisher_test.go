package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"commerce/internal/adapters/out/kafka"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/ports"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent() ports.OrderStateChangedEvent {
	return ports.OrderStateChangedEvent{
		OrderID:    kernel.NewUUID().String(),
		OrderCode:  "A1B2C3D4",
		FromState:  "ArrangingPayment",
		ToState:    "PaymentSettled",
		OccurredAt: time.Now(),
	}
}

func TestNewKafkaOrderEventPublisher(t *testing.T) {
	t.Run("should create publisher with valid arguments", func(t *testing.T) {
		// Arrange
		producer := mocks.NewSyncProducer(t, nil)

		// Act
		publisher, err := kafka.NewKafkaOrderEventPublisher(producer, "orders")

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, publisher)
	})

	t.Run("should return error when producer is nil", func(t *testing.T) {
		// Act
		publisher, err := kafka.NewKafkaOrderEventPublisher(nil, "orders")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, publisher)
	})

	t.Run("should return error when topic is empty", func(t *testing.T) {
		// Arrange
		producer := mocks.NewSyncProducer(t, nil)

		// Act
		publisher, err := kafka.NewKafkaOrderEventPublisher(producer, "")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, publisher)
	})
}

func TestKafkaOrderEventPublisher_PublishOrderStateChanged(t *testing.T) {
	t.Run("should publish event keyed by order id", func(t *testing.T) {
		// Arrange
		event := newTestEvent()
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			key, err := msg.Key.Encode()
			require.NoError(t, err)
			assert.Equal(t, event.OrderID, string(key))

			value, err := msg.Value.Encode()
			require.NoError(t, err)

			var decoded ports.OrderStateChangedEvent
			require.NoError(t, json.Unmarshal(value, &decoded))
			assert.Equal(t, event.OrderCode, decoded.OrderCode)
			assert.Equal(t, "PaymentSettled", decoded.ToState)
			return nil
		})

		publisher, err := kafka.NewKafkaOrderEventPublisher(producer, "orders")
		require.NoError(t, err)

		// Act
		err = publisher.PublishOrderStateChanged(context.Background(), event)

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should return error when broker rejects message", func(t *testing.T) {
		// Arrange
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		publisher, err := kafka.NewKafkaOrderEventPublisher(producer, "orders")
		require.NoError(t, err)

		// Act
		err = publisher.PublishOrderStateChanged(context.Background(), newTestEvent())

		// Assert
		assert.Error(t, err)
	})

	t.Run("should not publish when context is cancelled", func(t *testing.T) {
		// Arrange
		producer := mocks.NewSyncProducer(t, nil)
		publisher, err := kafka.NewKafkaOrderEventPublisher(producer, "orders")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// Act
		err = publisher.PublishOrderStateChanged(ctx, newTestEvent())

		// Assert
		assert.ErrorIs(t, err, context.Canceled)
	})
}
