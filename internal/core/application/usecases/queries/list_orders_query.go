package queries

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves a flat listing of orders, optionally filtered by
// lifecycle state. Backs operational dashboards; returns read models rather
// than full aggregates.
//
// Example:
//
//	query, err := NewListOrdersQuery(order.PaymentSettled)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	state *order.State

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query filtered to one state.
func NewListOrdersQuery(state order.State) (ListOrdersQuery, error) {
	if err := state.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		state: &state,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewListAllOrdersQuery creates an unfiltered listing query.
func NewListAllOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// State returns the state filter, or nil for an unfiltered listing.
func (q ListOrdersQuery) State() *order.State {
	return q.state
}

// Validate ensures the query was created through a constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListOrdersQueryResponse is a flat order row for listings.
type ListOrdersQueryResponse struct {
	ID                kernel.UUID
	Code              string
	State             string
	CurrencyCode      string
	SubTotal          kernel.Money
	SubTotalBeforeTax kernel.Money
	Shipping          kernel.Money
	PlacedAt          *time.Time
	CreatedAt         time.Time
}
