package ports

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// by identifier, public code and lifecycle state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order graph including lines, items and payments.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order aggregate by its public order code.
	// Callers enforce their own access rules; the repository only resolves
	// the code.
	GetByCode(ctx context.Context, code string) (*order.Order, error)

	// GetActiveForCustomer retrieves the newest order still in an active
	// state that belongs to the given user. Used to rebind a session to an
	// order after login.
	GetActiveForCustomer(ctx context.Context, userID kernel.UUID) (*order.Order, error)

	// GetAllInStateOlderThan retrieves orders in the given state that were
	// created before the cutoff. Age is measured from creation, not from
	// when the order entered the state, so an old cart becomes eligible as
	// soon as it reaches the state. Used by the stale order sweep.
	GetAllInStateOlderThan(ctx context.Context, state order.State, cutoff time.Time) ([]*order.Order, error)
}
