package commands

import (
	"errors"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/guard"
)

var ErrTransitionOrderToStateCommandIsNotConstructed = errors.New(
	"TransitionOrderToStateCommand must be created via NewTransitionOrderToStateCommand constructor",
)

// TransitionOrderToStateCommand moves the session's active order to a target
// lifecycle state through the state machine. Illegal transitions are rejected
// and leave the order untouched.
//
// Example:
//
//	cmd, err := NewTransitionOrderToStateCommand(order.ArrangingPayment)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, rctx, cmd)
//	if errors.Is(err, errs.ErrIllegalOrderTransition) {
//	    // transition not allowed from the current state
//	}
type TransitionOrderToStateCommand struct {
	target order.State

	guard guard.ConstructorGuard
}

// NewTransitionOrderToStateCommand creates a validated transition command.
func NewTransitionOrderToStateCommand(target order.State) (TransitionOrderToStateCommand, error) {
	if err := target.Validate(); err != nil {
		return TransitionOrderToStateCommand{}, err
	}

	return TransitionOrderToStateCommand{
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Target returns the state to transition to.
func (c TransitionOrderToStateCommand) Target() order.State {
	return c.target
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderToStateCommandIsNotConstructed if validation fails.
func (c TransitionOrderToStateCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderToStateCommandIsNotConstructed)
}
