package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrRemoveItemFromOrderCommandIsNotConstructed = errors.New(
	"RemoveItemFromOrderCommand must be created via NewRemoveItemFromOrderCommand constructor",
)

// RemoveItemFromOrderCommand removes a whole line from the session's active order.
type RemoveItemFromOrderCommand struct {
	lineID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveItemFromOrderCommand creates a validated command to remove a line.
func NewRemoveItemFromOrderCommand(lineID kernel.UUID) (RemoveItemFromOrderCommand, error) {
	if err := lineID.Validate(); err != nil {
		return RemoveItemFromOrderCommand{}, err
	}

	return RemoveItemFromOrderCommand{
		lineID: lineID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// LineID returns the order line to remove.
func (c RemoveItemFromOrderCommand) LineID() kernel.UUID {
	return c.lineID
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveItemFromOrderCommandIsNotConstructed if validation fails.
func (c RemoveItemFromOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemFromOrderCommandIsNotConstructed)
}
