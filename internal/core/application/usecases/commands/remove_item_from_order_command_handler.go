package commands

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
)

// RemoveItemFromOrderCommandHandler removes lines from the active order and
// re-runs the price adjustment pipeline before persisting.
type RemoveItemFromOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sessions   ports.SessionStore
	calculator services.OrderCalculator
}

// NewRemoveItemFromOrderCommandHandler creates a handler for line removal.
func NewRemoveItemFromOrderCommandHandler(
	uowFactory OrderUoWFactory,
	sessions ports.SessionStore,
	calculator services.OrderCalculator,
) RemoveItemFromOrderCommandHandler {
	return RemoveItemFromOrderCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		calculator: calculator,
	}
}

// Handle processes the line removal for the request's session.
func (h RemoveItemFromOrderCommandHandler) Handle(
	ctx context.Context,
	rctx kernel.RequestContext,
	command RemoveItemFromOrderCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	activeOrder, err := resolveActiveOrder(ctx, ordersRepo, h.sessions, rctx, false)
	if err != nil {
		return err
	}

	if activeOrder.State() != order.AddingItems {
		return ErrOrderNotModifiable
	}

	if err := activeOrder.RemoveLine(command.LineID()); err != nil {
		return err
	}

	if err := h.calculator.ApplyPriceAdjustments(ctx, activeOrder, rctx); err != nil {
		return err
	}

	if err := ordersRepo.Update(ctx, activeOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
