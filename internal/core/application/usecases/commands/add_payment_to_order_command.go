package commands

import (
	"errors"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrAddPaymentToOrderCommandIsNotConstructed = errors.New(
	"AddPaymentToOrderCommand must be created via NewAddPaymentToOrderCommand constructor",
)

// AddPaymentToOrderCommand records a settled payment against the session's
// active order. A successful payment completes checkout: the order moves to
// PaymentSettled, its placement time is stamped and the session's
// active-order binding is released.
type AddPaymentToOrderCommand struct {
	method string
	amount kernel.Money

	guard guard.ConstructorGuard
}

// NewAddPaymentToOrderCommand creates a validated payment command.
func NewAddPaymentToOrderCommand(method string, amount kernel.Money) (AddPaymentToOrderCommand, error) {
	if strings.TrimSpace(method) == "" {
		return AddPaymentToOrderCommand{}, errs.NewValueIsRequiredError("method")
	}
	if amount <= 0 {
		return AddPaymentToOrderCommand{}, errs.NewValueIsInvalidError("amount")
	}

	return AddPaymentToOrderCommand{
		method: method,
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Method returns the payment method code.
func (c AddPaymentToOrderCommand) Method() string {
	return c.method
}

// Amount returns the amount paid in minor units.
func (c AddPaymentToOrderCommand) Amount() kernel.Money {
	return c.amount
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddPaymentToOrderCommandIsNotConstructed if validation fails.
func (c AddPaymentToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddPaymentToOrderCommandIsNotConstructed)
}
