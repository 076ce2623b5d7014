package queries

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// ActiveOrderQueryHandler reads the session's active order. Unlike the
// command side it never creates an order and never rewrites the session
// binding.
type ActiveOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewActiveOrderQueryHandler creates a handler for active order reads.
func NewActiveOrderQueryHandler(orders ports.OrderRepository) ActiveOrderQueryHandler {
	return ActiveOrderQueryHandler{orders: orders}
}

// Handle resolves the active order for the request's session.
// Returns a not-found error when the session has none.
func (h ActiveOrderQueryHandler) Handle(
	ctx context.Context,
	rctx kernel.RequestContext,
	query ActiveOrderQuery,
) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	session := rctx.Session()
	if session == nil {
		return nil, errs.NewInternalError("no session on request context")
	}

	if orderID := session.ActiveOrderID(); orderID != nil {
		existing, err := h.orders.Get(ctx, *orderID)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		if existing != nil && existing.IsActive() {
			return existing, nil
		}
	}

	if userID := rctx.ActiveUserID(); userID != nil {
		existing, err := h.orders.GetActiveForCustomer(ctx, *userID)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("active order", session.ID())
}
