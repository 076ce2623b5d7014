package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
)

// CancelStaleOrdersCommandHandler cancels orders abandoned mid-checkout.
// All cancellations happen in one transaction; events go out after commit.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale order sweep.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle cancels every order arranging payment since before the cutoff.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, command CancelStaleOrdersCommand) error {
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

	staleOrders, err := ordersRepo.GetAllInStateOlderThan(ctx, order.ArrangingPayment, command.Cutoff())
	if err != nil {
		return err
	}
	if len(staleOrders) == 0 {
		return nil
	}

	stateMachine := order.NewDefaultStateMachine()
	for _, staleOrder := range staleOrders {
		if err := stateMachine.Transition(staleOrder, order.Cancelled); err != nil {
			return err
		}
		if err := ordersRepo.Update(ctx, staleOrder); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	for _, cancelled := range staleOrders {
		event := ports.OrderStateChangedEvent{
			OrderID:    cancelled.ID().String(),
			OrderCode:  cancelled.Code(),
			FromState:  order.ArrangingPayment.String(),
			ToState:    order.Cancelled.String(),
			OccurredAt: time.Now(),
		}
		if err := h.publisher.PublishOrderStateChanged(ctx, event); err != nil {
			return err
		}
	}

	return nil
}
