// Package shipping provides the shipping methods and price quotes the
// pipeline's shipping step consumes. Method configuration (eligibility
// windows, prices, ranking) is administered externally; the core only
// filters and quotes.
package shipping

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// ErrShippingMethodIsNotConstructed is returned when a ShippingMethod was not
// created through the NewShippingMethod factory function.
var ErrShippingMethodIsNotConstructed = errors.New(
	"ShippingMethod must be created via NewShippingMethod constructor",
)

// ShippingMethod is a configured way of delivering an order: a flat price
// valid inside a subtotal eligibility window, ranked externally. A zero
// maximum means the window is open-ended.
type ShippingMethod struct {
	id          kernel.UUID
	code        string
	name        string
	price       kernel.Money
	minSubtotal kernel.Money
	maxSubtotal kernel.Money
	rank        int

	guard guard.ConstructorGuard
}

// NewShippingMethod creates a validated ShippingMethod.
func NewShippingMethod(
	id kernel.UUID,
	code string,
	name string,
	price kernel.Money,
	minSubtotal kernel.Money,
	maxSubtotal kernel.Money,
	rank int,
) (ShippingMethod, error) {
	if err := id.Validate(); err != nil {
		return ShippingMethod{}, err
	}
	if code == "" {
		return ShippingMethod{}, errs.NewValueIsRequiredError("shipping method code")
	}
	if price < 0 {
		return ShippingMethod{}, errs.NewValueIsInvalidError("shipping method price")
	}

	return ShippingMethod{
		id:          id,
		code:        code,
		name:        name,
		price:       price,
		minSubtotal: minSubtotal,
		maxSubtotal: maxSubtotal,
		rank:        rank,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the method was created through NewShippingMethod.
func (m ShippingMethod) Validate() error {
	return m.guard.Validate(ErrShippingMethodIsNotConstructed)
}

// ID returns the method's unique identifier.
func (m ShippingMethod) ID() kernel.UUID {
	return m.id
}

// Code returns the method code, e.g. "standard" or "express".
func (m ShippingMethod) Code() string {
	return m.code
}

// Name returns the display name.
func (m ShippingMethod) Name() string {
	return m.name
}

// Price returns the flat shipping price in minor units.
func (m ShippingMethod) Price() kernel.Money {
	return m.price
}

// Rank returns the externally administered ranking position.
// Lower ranks are quoted first and win the default-selection tie-break.
func (m ShippingMethod) Rank() int {
	return m.rank
}

// EligibleFor reports whether an order subtotal falls inside the method's
// eligibility window.
func (m ShippingMethod) EligibleFor(subTotal kernel.Money) bool {
	if subTotal < m.minSubtotal {
		return false
	}
	if m.maxSubtotal > 0 && subTotal > m.maxSubtotal {
		return false
	}
	return true
}

// Quote pairs an eligible method with the price it would charge an order.
type Quote struct {
	Method ShippingMethod
	Price  kernel.Money
}
