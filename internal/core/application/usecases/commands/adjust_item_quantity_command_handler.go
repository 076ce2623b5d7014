package commands

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
)

// AdjustItemQuantityCommandHandler changes line quantities on the active order
// and re-runs the price adjustment pipeline before persisting.
type AdjustItemQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
	sessions   ports.SessionStore
	calculator services.OrderCalculator
}

// NewAdjustItemQuantityCommandHandler creates a handler for quantity adjustments.
func NewAdjustItemQuantityCommandHandler(
	uowFactory OrderUoWFactory,
	sessions ports.SessionStore,
	calculator services.OrderCalculator,
) AdjustItemQuantityCommandHandler {
	return AdjustItemQuantityCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		calculator: calculator,
	}
}

// Handle processes the quantity adjustment for the request's session.
// Returns ErrOrderNotModifiable when the active order already left the
// AddingItems state, or a not-found error when the line does not exist.
func (h AdjustItemQuantityCommandHandler) Handle(
	ctx context.Context,
	rctx kernel.RequestContext,
	command AdjustItemQuantityCommand,
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

	line, err := activeOrder.LineByID(command.LineID())
	if err != nil {
		return err
	}
	if err := line.SetQuantity(command.Quantity()); err != nil {
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
