package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
)

// SessionStore defines the contract for shopping session state. The
// active-order binding lives here, and SetActiveOrder/UnsetActiveOrder are
// the only sanctioned ways to change it.
type SessionStore interface {
	// Get retrieves the session with the given identifier, creating an empty
	// one when it does not exist yet.
	Get(ctx context.Context, sessionID string) (*kernel.Session, error)

	// SetActiveOrder binds the session to the given order.
	SetActiveOrder(ctx context.Context, sessionID string, orderID kernel.UUID) error

	// UnsetActiveOrder releases the session's active-order binding.
	// Called once payment is recorded or the order is cancelled.
	UnsetActiveOrder(ctx context.Context, sessionID string) error
}
