package commands

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrAddItemToOrderCommandIsNotConstructed = errors.New(
	"AddItemToOrderCommand must be created via NewAddItemToOrderCommand constructor",
)

// AddItemToOrderCommand puts a quantity of a product variant into the
// session's active order, creating the order when the session has none yet.
// Adding a variant that is already in the order increases the existing
// line's quantity instead of creating a second line.
//
// Example:
//
//	cmd, err := NewAddItemToOrderCommand(variantID, 2)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, rctx, cmd)
type AddItemToOrderCommand struct {
	variantID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddItemToOrderCommand creates a validated command to add a variant to the active order.
func NewAddItemToOrderCommand(variantID kernel.UUID, quantity int) (AddItemToOrderCommand, error) {
	if err := variantID.Validate(); err != nil {
		return AddItemToOrderCommand{}, err
	}
	if quantity <= 0 {
		return AddItemToOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return AddItemToOrderCommand{
		variantID: variantID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// VariantID returns the variant to add.
func (c AddItemToOrderCommand) VariantID() kernel.UUID {
	return c.variantID
}

// Quantity returns the number of units to add.
func (c AddItemToOrderCommand) Quantity() int {
	return c.quantity
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemToOrderCommandIsNotConstructed if validation fails.
func (c AddItemToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToOrderCommandIsNotConstructed)
}
