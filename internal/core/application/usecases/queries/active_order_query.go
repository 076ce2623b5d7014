package queries

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var ErrActiveOrderQueryIsNotConstructed = errors.New(
	"ActiveOrderQuery must be created via NewActiveOrderQuery constructor",
)

// ActiveOrderQuery retrieves the order the session is currently shopping
// with. Falls back to the authenticated user's newest active order when the
// session has no binding. Never creates an order.
type ActiveOrderQuery struct {
	guard guard.ConstructorGuard
}

// NewActiveOrderQuery creates a query for the session's active order.
func NewActiveOrderQuery() ActiveOrderQuery {
	return ActiveOrderQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrActiveOrderQueryIsNotConstructed if validation fails.
func (q ActiveOrderQuery) Validate() error {
	return q.guard.Validate(ErrActiveOrderQueryIsNotConstructed)
}
