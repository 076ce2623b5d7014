package commands

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// SetShippingMethodCommandHandler records a shipping method selection on the
// active order after checking the order is eligible for it, then re-runs the
// pipeline so the shipping charge reflects the selection.
type SetShippingMethodCommandHandler struct {
	uowFactory OrderUoWFactory
	sessions   ports.SessionStore
	calculator services.OrderCalculator
	shipping   services.ShippingCalculator
}

// NewSetShippingMethodCommandHandler creates a handler for shipping method selection.
func NewSetShippingMethodCommandHandler(
	uowFactory OrderUoWFactory,
	sessions ports.SessionStore,
	calculator services.OrderCalculator,
	shipping services.ShippingCalculator,
) SetShippingMethodCommandHandler {
	return SetShippingMethodCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		calculator: calculator,
		shipping:   shipping,
	}
}

// Handle processes the shipping method selection for the request's session.
// Returns a not-found error when the method is unknown or the order is not
// eligible for it.
func (h SetShippingMethodCommandHandler) Handle(
	ctx context.Context,
	rctx kernel.RequestContext,
	command SetShippingMethodCommand,
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

	quotes, err := h.shipping.EligibleQuotes(ctx, activeOrder)
	if err != nil {
		return err
	}

	eligible := false
	for _, quote := range quotes {
		if quote.Method.ID().IsEqual(command.MethodID()) {
			eligible = true
			break
		}
	}
	if !eligible {
		return errs.NewObjectNotFoundError("shipping method", command.MethodID())
	}

	if err := activeOrder.SetShippingMethod(command.MethodID()); err != nil {
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
