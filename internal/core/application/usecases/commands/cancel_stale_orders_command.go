package commands

import (
	"errors"
	"time"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand sweeps orders stuck in ArrangingPayment and
// cancels them through the state machine. The cutoff compares against order
// creation time, so a cart that lived past the TTL before entering checkout
// is cancelled on the next sweep after it gets there. Driven by the
// background job scheduler rather than a user request.
type CancelStaleOrdersCommand struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a validated sweep command.
func NewCancelStaleOrdersCommand(cutoff time.Time) (CancelStaleOrdersCommand, error) {
	if cutoff.IsZero() {
		return CancelStaleOrdersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return CancelStaleOrdersCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Cutoff returns the staleness threshold.
func (c CancelStaleOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelStaleOrdersCommandIsNotConstructed if validation fails.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}
