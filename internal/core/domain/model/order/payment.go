package order

import (
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// PaymentState is the settlement state of a payment attached to an order.
type PaymentState string

const (
	// PaymentAuthorizedState means the payment is authorized but not captured.
	PaymentAuthorizedState PaymentState = "Authorized"

	// PaymentSettledState means the payment is captured.
	PaymentSettledState PaymentState = "Settled"
)

// Payment is a monetary settlement recorded against an order. Payment
// processing itself is an external concern; the core only records the
// outcome and reacts to it in the lifecycle.
type Payment struct {
	id     kernel.UUID
	method string
	amount kernel.Money
	state  PaymentState
}

// NewPayment creates a validated payment record.
func NewPayment(id kernel.UUID, method string, amount kernel.Money, state PaymentState) (Payment, error) {
	if err := id.Validate(); err != nil {
		return Payment{}, err
	}
	if method == "" {
		return Payment{}, errs.NewValueIsRequiredError("payment method")
	}
	if state != PaymentAuthorizedState && state != PaymentSettledState {
		return Payment{}, errs.NewValueIsInvalidError("payment state")
	}

	return Payment{id: id, method: method, amount: amount, state: state}, nil
}

// ID returns the payment's unique identifier.
func (p Payment) ID() kernel.UUID {
	return p.id
}

// Method returns the payment method code.
func (p Payment) Method() string {
	return p.method
}

// Amount returns the paid amount in minor units.
func (p Payment) Amount() kernel.Money {
	return p.amount
}

// State returns the settlement state.
func (p Payment) State() PaymentState {
	return p.state
}
