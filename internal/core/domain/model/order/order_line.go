package order

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/tax"
	"commerce/internal/pkg/errs"
)

var (
	// ErrOrderLineIsNotConstructed is returned when an OrderLine was not
	// created through NewOrderLine or RestoreOrderLine.
	ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine constructor")
)

// OrderLine is a distinct purchasable line of an order: a variant reference,
// the entered unit price and tax category, and one OrderItem per unit.
// The applied tax rate and price-inclusivity flag are stored on the line by
// the pricing pipeline so persisted orders reproduce their breakdown exactly.
type OrderLine struct {
	id               kernel.UUID
	variantID        kernel.UUID
	unitPrice        kernel.Money
	taxCategory      tax.Category
	taxRate          float64
	priceIncludesTax bool
	items            []*OrderItem

	isConstructed bool
}

// NewOrderLine creates a line with quantity unit items at the given price.
func NewOrderLine(
	id kernel.UUID,
	variantID kernel.UUID,
	unitPrice kernel.Money,
	taxCategory tax.Category,
	quantity int,
) (*OrderLine, error) {
	if err := errors.Join(id.Validate(), variantID.Validate()); err != nil {
		return nil, err
	}
	if taxCategory == "" {
		return nil, errs.NewValueIsRequiredError("tax category")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	line := &OrderLine{
		id:            id,
		variantID:     variantID,
		unitPrice:     unitPrice,
		taxCategory:   taxCategory,
		isConstructed: true,
	}

	for range quantity {
		item, err := NewOrderItem(kernel.NewUUID(), unitPrice)
		if err != nil {
			return nil, err
		}
		line.items = append(line.items, item)
	}

	return line, nil
}

// RestoreOrderLine rebuilds a line from persisted state including its items.
func RestoreOrderLine(
	id kernel.UUID,
	variantID kernel.UUID,
	unitPrice kernel.Money,
	taxCategory tax.Category,
	taxRate float64,
	priceIncludesTax bool,
	items []*OrderItem,
) (*OrderLine, error) {
	if err := errors.Join(id.Validate(), variantID.Validate()); err != nil {
		return nil, err
	}
	if taxCategory == "" {
		return nil, errs.NewValueIsRequiredError("tax category")
	}

	return &OrderLine{
		id:               id,
		variantID:        variantID,
		unitPrice:        unitPrice,
		taxCategory:      taxCategory,
		taxRate:          taxRate,
		priceIncludesTax: priceIncludesTax,
		items:            items,
		isConstructed:    true,
	}, nil
}

// Validate ensures the line was created through a constructor.
func (l *OrderLine) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrOrderLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *OrderLine) ID() kernel.UUID {
	return l.id
}

// VariantID returns the purchasable variant this line references.
func (l *OrderLine) VariantID() kernel.UUID {
	return l.variantID
}

// UnitPrice returns the entered per-unit price.
func (l *OrderLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

// TaxCategory returns the tax category the line's variant belongs to.
func (l *OrderLine) TaxCategory() tax.Category {
	return l.taxCategory
}

// TaxRate returns the percentage rate last applied by the pipeline.
func (l *OrderLine) TaxRate() float64 {
	return l.taxRate
}

// SetTaxRate records the rate applied to the line.
// Called by the pricing pipeline during a tax pass.
func (l *OrderLine) SetTaxRate(value float64) {
	l.taxRate = value
}

// PriceIncludesTax reports whether the entered unit price is tax-inclusive.
func (l *OrderLine) PriceIncludesTax() bool {
	return l.priceIncludesTax
}

// SetPriceIncludesTax records the price-inclusivity the pipeline resolved.
func (l *OrderLine) SetPriceIncludesTax(includes bool) {
	l.priceIncludesTax = includes
}

// Items returns the line's unit items in order.
func (l *OrderLine) Items() []*OrderItem {
	return l.items
}

// Quantity returns the number of unit items on the line.
func (l *OrderLine) Quantity() int {
	return len(l.items)
}

// SetQuantity grows or shrinks the line to the requested number of items.
// New items start at the entered unit price with no adjustments; surplus
// items are dropped from the end. The quantity must be positive; removing
// a line entirely is the aggregate's RemoveLine operation.
func (l *OrderLine) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	for len(l.items) < quantity {
		item, err := NewOrderItem(kernel.NewUUID(), l.unitPrice)
		if err != nil {
			return err
		}
		l.items = append(l.items, item)
	}
	if len(l.items) > quantity {
		l.items = l.items[:quantity]
	}

	return nil
}

// ClearAdjustments removes adjustments of the given type from every item.
func (l *OrderLine) ClearAdjustments(t AdjustmentType) {
	for _, item := range l.items {
		item.ClearAdjustments(t)
	}
}

// TotalPrice returns the sum of the items' final prices.
func (l *OrderLine) TotalPrice() kernel.Money {
	var total kernel.Money
	for _, item := range l.items {
		total += item.FinalPrice()
	}
	return total
}

// LineTax returns the summed tax adjustments across the line's items.
func (l *OrderLine) LineTax() kernel.Money {
	var total kernel.Money
	for _, item := range l.items {
		total += item.Tax()
	}
	return total
}
