package queries

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var ErrNextOrderStatesQueryIsNotConstructed = errors.New(
	"NextOrderStatesQuery must be created via NewNextOrderStatesQuery constructor",
)

// NextOrderStatesQuery lists the lifecycle states the session's active order
// can legally transition to right now, guards included. Storefronts use this
// to decide which checkout actions to offer.
type NextOrderStatesQuery struct {
	guard guard.ConstructorGuard
}

// NewNextOrderStatesQuery creates a query for reachable order states.
func NewNextOrderStatesQuery() NextOrderStatesQuery {
	return NextOrderStatesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrNextOrderStatesQueryIsNotConstructed if validation fails.
func (q NextOrderStatesQuery) Validate() error {
	return q.guard.Validate(ErrNextOrderStatesQueryIsNotConstructed)
}
