package commands

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrAdjustItemQuantityCommandIsNotConstructed = errors.New(
	"AdjustItemQuantityCommand must be created via NewAdjustItemQuantityCommand constructor",
)

// AdjustItemQuantityCommand changes the quantity of an existing line in the
// session's active order. Removing a line entirely is a separate command.
type AdjustItemQuantityCommand struct {
	lineID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewAdjustItemQuantityCommand creates a validated command to change a line's quantity.
func NewAdjustItemQuantityCommand(lineID kernel.UUID, quantity int) (AdjustItemQuantityCommand, error) {
	if err := lineID.Validate(); err != nil {
		return AdjustItemQuantityCommand{}, err
	}
	if quantity <= 0 {
		return AdjustItemQuantityCommand{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return AdjustItemQuantityCommand{
		lineID:   lineID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// LineID returns the order line to adjust.
func (c AdjustItemQuantityCommand) LineID() kernel.UUID {
	return c.lineID
}

// Quantity returns the new quantity for the line.
func (c AdjustItemQuantityCommand) Quantity() int {
	return c.quantity
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdjustItemQuantityCommandIsNotConstructed if validation fails.
func (c AdjustItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrAdjustItemQuantityCommandIsNotConstructed)
}
