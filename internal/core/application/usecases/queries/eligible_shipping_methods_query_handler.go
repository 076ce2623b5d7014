package queries

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/shipping"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
)

// EligibleShippingMethodsQueryHandler quotes shipping for the active order.
type EligibleShippingMethodsQueryHandler struct {
	activeOrders ActiveOrderQueryHandler
	shipping     services.ShippingCalculator
}

// NewEligibleShippingMethodsQueryHandler creates a handler for shipping quote queries.
func NewEligibleShippingMethodsQueryHandler(
	orders ports.OrderRepository,
	shipping services.ShippingCalculator,
) EligibleShippingMethodsQueryHandler {
	return EligibleShippingMethodsQueryHandler{
		activeOrders: NewActiveOrderQueryHandler(orders),
		shipping:     shipping,
	}
}

// Handle returns the quotes for the active order, best ranked first.
func (h EligibleShippingMethodsQueryHandler) Handle(
	ctx context.Context,
	rctx kernel.RequestContext,
	query EligibleShippingMethodsQuery,
) ([]shipping.Quote, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	activeOrder, err := h.activeOrders.Handle(ctx, rctx, NewActiveOrderQuery())
	if err != nil {
		return nil, err
	}

	return h.shipping.EligibleQuotes(ctx, activeOrder)
}
