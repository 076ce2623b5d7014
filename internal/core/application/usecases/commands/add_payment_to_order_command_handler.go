package commands

import (
	"context"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// AddPaymentToOrderCommandHandler completes checkout. It records the payment,
// moves the order to PaymentSettled through the state machine, releases the
// session's active-order binding and publishes a state-changed event once the
// transaction commits.
type AddPaymentToOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sessions   ports.SessionStore
	publisher  ports.OrderEventPublisher
}

// NewAddPaymentToOrderCommandHandler creates a handler for payment recording.
func NewAddPaymentToOrderCommandHandler(
	uowFactory OrderUoWFactory,
	sessions ports.SessionStore,
	publisher ports.OrderEventPublisher,
) AddPaymentToOrderCommandHandler {
	return AddPaymentToOrderCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		publisher:  publisher,
	}
}

// Handle processes the payment for the request's session. The paid amount
// must match the order total exactly; the transition to PaymentSettled fails
// for orders that are not arranging payment.
func (h AddPaymentToOrderCommandHandler) Handle(
	ctx context.Context,
	rctx kernel.RequestContext,
	command AddPaymentToOrderCommand,
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

	if command.Amount() != activeOrder.Total() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("payment of %d does not match order total %d", command.Amount(), activeOrder.Total()))
	}

	fromState := activeOrder.State()
	if err := order.NewDefaultStateMachine().Transition(activeOrder, order.PaymentSettled); err != nil {
		return err
	}

	payment, err := order.NewPayment(kernel.NewUUID(), command.Method(), command.Amount(), order.PaymentSettledState)
	if err != nil {
		return err
	}
	activeOrder.AddPayment(payment, time.Now())

	if err := ordersRepo.Update(ctx, activeOrder); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	// Released only after the commit: a failed update must leave the session
	// bound to its still-unpaid order. A leftover binding to a settled order
	// self-heals, since active-order resolution skips inactive orders.
	if err := h.sessions.UnsetActiveOrder(ctx, rctx.Session().ID()); err != nil {
		return err
	}
	rctx.Session().UnbindActiveOrder()

	return h.publisher.PublishOrderStateChanged(ctx, ports.OrderStateChangedEvent{
		OrderID:    activeOrder.ID().String(),
		OrderCode:  activeOrder.Code(),
		FromState:  fromState.String(),
		ToState:    activeOrder.State().String(),
		OccurredAt: time.Now(),
	})
}
