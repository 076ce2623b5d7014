package commands

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// ErrOrderNotModifiable is returned when a command tries to change the
// contents of an order that already left the AddingItems state.
var ErrOrderNotModifiable = errors.New("order contents can no longer be modified")

// resolveActiveOrder finds the order the request's session is shopping with.
//
// Resolution order: the session's active-order binding first, then the newest
// active order of the authenticated user (rebinding the session to it). When
// neither yields an order, createIfAbsent decides between creating a fresh
// order bound to the session and returning a not-found error.
//
// A bound order that has meanwhile left the active phase is skipped, not
// returned; the binding is simply superseded.
func resolveActiveOrder(
	ctx context.Context,
	orders ports.OrderRepository,
	sessions ports.SessionStore,
	rctx kernel.RequestContext,
	createIfAbsent bool,
) (*order.Order, error) {
	session := rctx.Session()
	if session == nil {
		return nil, errs.NewInternalError("no session on request context")
	}

	if orderID := session.ActiveOrderID(); orderID != nil {
		existing, err := orders.Get(ctx, *orderID)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		if existing != nil && existing.IsActive() {
			return existing, nil
		}
	}

	if userID := rctx.ActiveUserID(); userID != nil {
		existing, err := orders.GetActiveForCustomer(ctx, *userID)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}
		if existing != nil {
			if err := sessions.SetActiveOrder(ctx, session.ID(), existing.ID()); err != nil {
				return nil, err
			}
			session.BindActiveOrder(existing.ID())
			return existing, nil
		}
	}

	if !createIfAbsent {
		return nil, errs.NewObjectNotFoundError("active order", session.ID())
	}

	created, err := order.NewOrder(kernel.NewUUID(), rctx.Channel().CurrencyCode(), time.Now())
	if err != nil {
		return nil, err
	}

	if err := orders.Add(ctx, created); err != nil {
		return nil, err
	}
	if err := sessions.SetActiveOrder(ctx, session.ID(), created.ID()); err != nil {
		return nil, err
	}
	session.BindActiveOrder(created.ID())

	return created, nil
}
