package ports

import (
	"context"
	"time"
)

// OrderStateChangedEvent notifies downstream consumers that an order moved
// between lifecycle states.
type OrderStateChangedEvent struct {
	OrderID    string    `json:"order_id"`
	OrderCode  string    `json:"order_code"`
	FromState  string    `json:"from_state"`
	ToState    string    `json:"to_state"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventPublisher defines the contract for publishing order lifecycle
// events to the message broker.
type OrderEventPublisher interface {
	// PublishOrderStateChanged emits a state-change event. Publish failures
	// surface to the caller; handlers decide whether they are fatal.
	PublishOrderStateChanged(ctx context.Context, event OrderStateChangedEvent) error
}
