package commands

import (
	"errors"
	"strings"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrSetCustomerForOrderCommandIsNotConstructed = errors.New(
	"SetCustomerForOrderCommand must be created via NewSetCustomerForOrderCommand constructor",
)

// SetCustomerForOrderCommand attaches a customer to the session's active
// order. The user reference is optional; anonymous checkouts attach a
// customer identified by email address only.
type SetCustomerForOrderCommand struct {
	emailAddress string
	userID       *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetCustomerForOrderCommand creates a validated command to attach a customer.
func NewSetCustomerForOrderCommand(emailAddress string, userID *kernel.UUID) (SetCustomerForOrderCommand, error) {
	if strings.TrimSpace(emailAddress) == "" {
		return SetCustomerForOrderCommand{}, errs.NewValueIsRequiredError("emailAddress")
	}
	if !strings.Contains(emailAddress, "@") {
		return SetCustomerForOrderCommand{}, errs.NewValueIsInvalidError("emailAddress")
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return SetCustomerForOrderCommand{}, err
		}
	}

	return SetCustomerForOrderCommand{
		emailAddress: emailAddress,
		userID:       userID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// EmailAddress returns the customer's email address.
func (c SetCustomerForOrderCommand) EmailAddress() string {
	return c.emailAddress
}

// UserID returns the authenticated user reference, or nil for anonymous customers.
func (c SetCustomerForOrderCommand) UserID() *kernel.UUID {
	return c.userID
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetCustomerForOrderCommandIsNotConstructed if validation fails.
func (c SetCustomerForOrderCommand) Validate() error {
	return c.guard.Validate(ErrSetCustomerForOrderCommandIsNotConstructed)
}
