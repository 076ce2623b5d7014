package queries

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// OrderByCodeQueryHandler resolves public order codes under the access rules:
//
//   - the authenticated owner of the order may always see it;
//   - an anonymous order (no user attached) is visible to anyone holding the
//     code for a limited window after placement, long enough for the
//     confirmation page and email link to work;
//   - everything else, including codes that do not exist, is forbidden.
//
// The single forbidden outcome keeps the code space unprobeable.
type OrderByCodeQueryHandler struct {
	orders                ports.OrderRepository
	anonymousAccessWindow time.Duration
}

// NewOrderByCodeQueryHandler creates a handler for public order code lookups.
// anonymousAccessWindow bounds how long an order without an owner stays
// reachable by code after placement.
func NewOrderByCodeQueryHandler(
	orders ports.OrderRepository,
	anonymousAccessWindow time.Duration,
) OrderByCodeQueryHandler {
	return OrderByCodeQueryHandler{
		orders:                orders,
		anonymousAccessWindow: anonymousAccessWindow,
	}
}

// Handle resolves the code for the requesting user or session.
// Returns a forbidden error for unknown codes and inaccessible orders alike.
func (h OrderByCodeQueryHandler) Handle(
	ctx context.Context,
	rctx kernel.RequestContext,
	query OrderByCodeQuery,
) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.orders.GetByCode(ctx, query.Code())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewForbiddenError()
	}
	if err != nil {
		return nil, err
	}

	if h.canSee(rctx, found) {
		return found, nil
	}

	return nil, errs.NewForbiddenError()
}

func (h OrderByCodeQueryHandler) canSee(rctx kernel.RequestContext, o *order.Order) bool {
	customer := o.Customer()
	ownerID := (*kernel.UUID)(nil)
	if customer != nil {
		ownerID = customer.UserID()
	}

	if ownerID != nil {
		userID := rctx.ActiveUserID()
		return userID != nil && userID.IsEqual(*ownerID)
	}

	if session := rctx.Session(); session != nil {
		if activeID := session.ActiveOrderID(); activeID != nil && activeID.IsEqual(o.ID()) {
			return true
		}
	}

	// Ownerless orders stay reachable by code briefly after placement.
	if placedAt := o.PlacedAt(); placedAt != nil {
		return time.Since(*placedAt) < h.anonymousAccessWindow
	}

	return false
}
