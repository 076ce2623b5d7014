package queries

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
)

// NextOrderStatesQueryHandler evaluates the state machine against the active
// order and reports the reachable states by name.
type NextOrderStatesQueryHandler struct {
	activeOrders ActiveOrderQueryHandler
}

// NewNextOrderStatesQueryHandler creates a handler for reachable state queries.
func NewNextOrderStatesQueryHandler(orders ports.OrderRepository) NextOrderStatesQueryHandler {
	return NextOrderStatesQueryHandler{activeOrders: NewActiveOrderQueryHandler(orders)}
}

// Handle returns the names of states the active order can move to.
func (h NextOrderStatesQueryHandler) Handle(
	ctx context.Context,
	rctx kernel.RequestContext,
	query NextOrderStatesQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	activeOrder, err := h.activeOrders.Handle(ctx, rctx, NewActiveOrderQuery())
	if err != nil {
		return nil, err
	}

	states := order.NewDefaultStateMachine().NextStates(activeOrder)
	names := make([]string, 0, len(states))
	for _, state := range states {
		names = append(names, state.String())
	}

	return names, nil
}
