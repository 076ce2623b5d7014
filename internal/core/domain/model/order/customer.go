package order

import (
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// Customer is the reference an order holds to its buyer. The user ID is set
// only for registered customers; guest orders carry just the email address.
type Customer struct {
	id           kernel.UUID
	userID       *kernel.UUID
	emailAddress string
}

// NewCustomer creates a validated customer reference.
func NewCustomer(id kernel.UUID, emailAddress string, userID *kernel.UUID) (Customer, error) {
	if err := id.Validate(); err != nil {
		return Customer{}, err
	}
	if emailAddress == "" {
		return Customer{}, errs.NewValueIsRequiredError("email address")
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return Customer{}, err
		}
	}

	return Customer{id: id, userID: userID, emailAddress: emailAddress}, nil
}

// ID returns the customer's unique identifier.
func (c Customer) ID() kernel.UUID {
	return c.id
}

// UserID returns the linked user account, or nil for guests.
func (c Customer) UserID() *kernel.UUID {
	return c.userID
}

// EmailAddress returns the customer's email address.
func (c Customer) EmailAddress() string {
	return c.emailAddress
}
