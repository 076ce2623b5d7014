package commands

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
)

// TransitionOrderToStateCommandHandler drives the order lifecycle. State
// changes go through the state machine, and when the order leaves the active
// phase the session's active-order binding is released. A state-changed event
// is published after the transaction commits.
type TransitionOrderToStateCommandHandler struct {
	uowFactory OrderUoWFactory
	sessions   ports.SessionStore
	publisher  ports.OrderEventPublisher
}

// NewTransitionOrderToStateCommandHandler creates a handler for lifecycle transitions.
func NewTransitionOrderToStateCommandHandler(
	uowFactory OrderUoWFactory,
	sessions ports.SessionStore,
	publisher ports.OrderEventPublisher,
) TransitionOrderToStateCommandHandler {
	return TransitionOrderToStateCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		publisher:  publisher,
	}
}

// Handle processes the transition for the request's session.
// Returns an illegal-transition error when the state machine rejects the move.
func (h TransitionOrderToStateCommandHandler) Handle(
	ctx context.Context,
	rctx kernel.RequestContext,
	command TransitionOrderToStateCommand,
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

	fromState := activeOrder.State()
	if err := order.NewDefaultStateMachine().Transition(activeOrder, command.Target()); err != nil {
		return err
	}

	if err := ordersRepo.Update(ctx, activeOrder); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	// Released only after the commit so a failed update leaves the session
	// bound to the order it was shopping with.
	if !activeOrder.IsActive() {
		if err := h.sessions.UnsetActiveOrder(ctx, rctx.Session().ID()); err != nil {
			return err
		}
		rctx.Session().UnbindActiveOrder()
	}

	return h.publisher.PublishOrderStateChanged(ctx, ports.OrderStateChangedEvent{
		OrderID:    activeOrder.ID().String(),
		OrderCode:  activeOrder.Code(),
		FromState:  fromState.String(),
		ToState:    activeOrder.State().String(),
		OccurredAt: time.Now(),
	})
}
