package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrSetShippingMethodCommandIsNotConstructed = errors.New(
	"SetShippingMethodCommand must be created via NewSetShippingMethodCommand constructor",
)

// SetShippingMethodCommand selects a shipping method for the session's active
// order. The method must be among the ones the order is currently eligible
// for; the pipeline prices it.
type SetShippingMethodCommand struct {
	methodID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetShippingMethodCommand creates a validated command to select a shipping method.
func NewSetShippingMethodCommand(methodID kernel.UUID) (SetShippingMethodCommand, error) {
	if err := methodID.Validate(); err != nil {
		return SetShippingMethodCommand{}, err
	}

	return SetShippingMethodCommand{
		methodID: methodID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// MethodID returns the shipping method to select.
func (c SetShippingMethodCommand) MethodID() kernel.UUID {
	return c.methodID
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetShippingMethodCommandIsNotConstructed if validation fails.
func (c SetShippingMethodCommand) Validate() error {
	return c.guard.Validate(ErrSetShippingMethodCommandIsNotConstructed)
}
