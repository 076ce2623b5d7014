package commands

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
)

// SetCustomerForOrderCommandHandler attaches a customer to the active order.
// The pipeline runs afterwards because customer-gated promotions may now
// match.
type SetCustomerForOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sessions   ports.SessionStore
	calculator services.OrderCalculator
}

// NewSetCustomerForOrderCommandHandler creates a handler for attaching customers.
func NewSetCustomerForOrderCommandHandler(
	uowFactory OrderUoWFactory,
	sessions ports.SessionStore,
	calculator services.OrderCalculator,
) SetCustomerForOrderCommandHandler {
	return SetCustomerForOrderCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		calculator: calculator,
	}
}

// Handle processes the customer attachment for the request's session.
func (h SetCustomerForOrderCommandHandler) Handle(
	ctx context.Context,
	rctx kernel.RequestContext,
	command SetCustomerForOrderCommand,
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

	customer, err := order.NewCustomer(kernel.NewUUID(), command.EmailAddress(), command.UserID())
	if err != nil {
		return err
	}
	activeOrder.SetCustomer(customer)

	if err := h.calculator.ApplyPriceAdjustments(ctx, activeOrder, rctx); err != nil {
		return err
	}

	if err := ordersRepo.Update(ctx, activeOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
