package order

import (
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLineNotFound is returned when a referenced order line does not exist
	// on the aggregate.
	ErrLineNotFound = errors.New("order line not found")
)

// Order is the aggregate root for a customer's in-progress or completed
// purchase. It owns the line/item graph the pricing pipeline mutates, the
// order-level adjustments, the shipping selection and the derived totals.
//
// Order maintains these invariants after every completed pipeline run:
//   - subTotal equals the sum of line total prices
//   - subTotalBeforeTax equals subTotal minus the summed line tax
//   - the shipping charge is consistent with the selected shipping method
//   - an order without lines has zero totals and no adjustments
//
// The lifecycle state is private to the package: only the StateMachine
// assigns it. An Order is owned exclusively by the request processing it;
// persistence provides the isolation between concurrent recalculations.
type Order struct {
	id               kernel.UUID
	code             string
	state            State
	currencyCode     string
	lines            []*OrderLine
	adjustments      []Adjustment
	shippingMethodID *kernel.UUID
	shipping         kernel.Money
	customer         *Customer
	payments         []Payment

	subTotal          kernel.Money
	subTotalBeforeTax kernel.Money

	createdAt time.Time
	placedAt  *time.Time

	isConstructed bool
}

// NewOrder creates an empty order in the AddingItems state with a fresh
// public code.
func NewOrder(id kernel.UUID, currencyCode string, now time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if currencyCode == "" {
		return nil, errs.NewValueIsRequiredError("currency code")
	}

	return &Order{
		id:            id,
		code:          NewOrderCode(),
		state:         AddingItems,
		currencyCode:  currencyCode,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order from persisted state. The state must be a
// valid lifecycle state; totals are restored as persisted and are expected
// to satisfy the aggregate invariants.
func RestoreOrder(
	id kernel.UUID,
	code string,
	state State,
	currencyCode string,
	lines []*OrderLine,
	adjustments []Adjustment,
	shippingMethodID *kernel.UUID,
	shipping kernel.Money,
	customer *Customer,
	payments []Payment,
	createdAt time.Time,
	placedAt *time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), state.Validate()); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("order code")
	}
	if currencyCode == "" {
		return nil, errs.NewValueIsRequiredError("currency code")
	}

	o := &Order{
		id:               id,
		code:             code,
		state:            state,
		currencyCode:     currencyCode,
		lines:            lines,
		adjustments:      adjustments,
		shippingMethodID: shippingMethodID,
		shipping:         shipping,
		customer:         customer,
		payments:         payments,
		createdAt:        createdAt,
		placedAt:         placedAt,
		isConstructed:    true,
	}
	o.RecalculateTotals()

	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the public, human-readable order code.
func (o *Order) Code() string {
	return o.code
}

// State returns the current lifecycle state.
func (o *Order) State() State {
	return o.state
}

// setState assigns the lifecycle state. Only the StateMachine calls this.
func (o *Order) setState(s State) {
	o.state = s
}

// CurrencyCode returns the ISO currency code the order is priced in.
func (o *Order) CurrencyCode() string {
	return o.currencyCode
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PlacedAt returns when the first payment was recorded, or nil.
func (o *Order) PlacedAt() *time.Time {
	return o.placedAt
}

// Lines returns the order's lines in sequence.
func (o *Order) Lines() []*OrderLine {
	return o.lines
}

// IsEmpty reports whether the order has no lines.
func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// LineByID returns the line with the given ID.
func (o *Order) LineByID(lineID kernel.UUID) (*OrderLine, error) {
	for _, line := range o.lines {
		if line.ID().IsEqual(lineID) {
			return line, nil
		}
	}
	return nil, ErrLineNotFound
}

// LineByVariant returns the line referencing the given variant, or nil.
// Adding an already-present variant increases quantity rather than producing
// duplicate lines.
func (o *Order) LineByVariant(variantID kernel.UUID) *OrderLine {
	for _, line := range o.lines {
		if line.VariantID().IsEqual(variantID) {
			return line
		}
	}
	return nil
}

// AddLine appends a line to the order.
func (o *Order) AddLine(line *OrderLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	o.lines = append(o.lines, line)
	return nil
}

// RemoveLine removes the line with the given ID.
func (o *Order) RemoveLine(lineID kernel.UUID) error {
	for idx, line := range o.lines {
		if line.ID().IsEqual(lineID) {
			o.lines = append(o.lines[:idx], o.lines[idx+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// Adjustments returns a copy of the order-level adjustment set.
func (o *Order) Adjustments() []Adjustment {
	return append([]Adjustment(nil), o.adjustments...)
}

// AddAdjustment appends an order-level adjustment.
func (o *Order) AddAdjustment(a Adjustment) {
	o.adjustments = append(o.adjustments, a)
}

// ClearAdjustments removes all order-level adjustments.
// The pipeline calls this at pass start; order-level adjustments are
// replaced, never accumulated, across runs.
func (o *Order) ClearAdjustments() {
	o.adjustments = nil
}

// ShippingMethodID returns the selected shipping method, or nil.
func (o *Order) ShippingMethodID() *kernel.UUID {
	return o.shippingMethodID
}

// SetShippingMethod records the customer's shipping method selection without
// pricing it; the pipeline's shipping step resolves the price.
func (o *Order) SetShippingMethod(methodID kernel.UUID) error {
	if err := methodID.Validate(); err != nil {
		return err
	}
	o.shippingMethodID = &methodID
	return nil
}

// Shipping returns the current shipping charge.
func (o *Order) Shipping() kernel.Money {
	return o.shipping
}

// SetShippingQuote records the quoted method and price together, keeping
// the charge consistent with the selected method.
func (o *Order) SetShippingQuote(methodID kernel.UUID, price kernel.Money) error {
	if err := methodID.Validate(); err != nil {
		return err
	}
	o.shippingMethodID = &methodID
	o.shipping = price
	return nil
}

// Customer returns the buyer reference, or nil while the order is anonymous.
func (o *Order) Customer() *Customer {
	return o.customer
}

// SetCustomer attaches a buyer to the order.
func (o *Order) SetCustomer(c Customer) {
	o.customer = &c
}

// Payments returns the payments recorded against the order.
func (o *Order) Payments() []Payment {
	return append([]Payment(nil), o.payments...)
}

// AddPayment records a payment and stamps the placement time on the first
// one. Lifecycle consequences (transitioning to a payment state, releasing
// the session's active-order binding) are driven by the caller through the
// state machine.
func (o *Order) AddPayment(p Payment, now time.Time) {
	o.payments = append(o.payments, p)
	if o.placedAt == nil {
		o.placedAt = &now
	}
}

// SubTotal returns the tax-inclusive sum of line total prices.
func (o *Order) SubTotal() kernel.Money {
	return o.subTotal
}

// SubTotalBeforeTax returns the subtotal minus the summed line tax.
func (o *Order) SubTotalBeforeTax() kernel.Money {
	return o.subTotalBeforeTax
}

// Total returns the amount payable: subtotal plus order-level adjustments
// plus shipping.
func (o *Order) Total() kernel.Money {
	total := o.subTotal + o.shipping
	for _, a := range o.adjustments {
		total += a.Amount
	}
	return total
}

// IsActive reports whether the order is still bound to a shopping session.
// Orders leave the active phase once payment is recorded or the order is
// cancelled.
func (o *Order) IsActive() bool {
	return o.state == AddingItems || o.state == ArrangingPayment
}

// RecalculateTotals rederives the order totals from the line graph.
// It is pure with respect to its inputs and must be called after every
// structural mutation; totals are never accumulated incrementally.
func (o *Order) RecalculateTotals() {
	var totalPrice, totalTax kernel.Money
	for _, line := range o.lines {
		totalPrice += line.TotalPrice()
		totalTax += line.LineTax()
	}

	o.subTotal = totalPrice
	o.subTotalBeforeTax = totalPrice - totalTax
}
