package order

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
// through NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a single unit-level instance of an order line. Each item
// carries its own pending adjustments so unit-level discounts and taxes stay
// monetarily exact; the derived final price is the unit price after
// promotions plus tax.
//
// Pending adjustments are append-only within a pipeline pass and cleared per
// type at pass start, which is what makes repeated pipeline runs idempotent.
type OrderItem struct {
	id                 kernel.UUID
	unitPrice          kernel.Money
	pendingAdjustments []Adjustment

	isConstructed bool
}

// NewOrderItem creates an item with the line's entered unit price and no
// pending adjustments.
func NewOrderItem(id kernel.UUID, unitPrice kernel.Money) (*OrderItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &OrderItem{
		id:            id,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// RestoreOrderItem rebuilds an item from persisted state.
func RestoreOrderItem(id kernel.UUID, unitPrice kernel.Money, adjustments []Adjustment) (*OrderItem, error) {
	item, err := NewOrderItem(id, unitPrice)
	if err != nil {
		return nil, err
	}
	item.pendingAdjustments = append([]Adjustment(nil), adjustments...)
	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// UnitPrice returns the entered unit price before any adjustment.
func (i *OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// PendingAdjustments returns a copy of the item's adjustment sequence.
func (i *OrderItem) PendingAdjustments() []Adjustment {
	return append([]Adjustment(nil), i.pendingAdjustments...)
}

// AddAdjustment appends an adjustment to the item's pending sequence.
func (i *OrderItem) AddAdjustment(a Adjustment) {
	i.pendingAdjustments = append(i.pendingAdjustments, a)
}

// ClearAdjustments removes all pending adjustments of the given type,
// preserving the order of the rest.
func (i *OrderItem) ClearAdjustments(t AdjustmentType) {
	kept := i.pendingAdjustments[:0]
	for _, a := range i.pendingAdjustments {
		if a.Type != t {
			kept = append(kept, a)
		}
	}
	i.pendingAdjustments = kept
}

// AdjustmentsTotal sums the pending adjustments of the given type.
func (i *OrderItem) AdjustmentsTotal(t AdjustmentType) kernel.Money {
	var total kernel.Money
	for _, a := range i.pendingAdjustments {
		if a.Type == t {
			total += a.Amount
		}
	}
	return total
}

// UnitPriceWithPromotions returns the unit price after promotion adjustments.
func (i *OrderItem) UnitPriceWithPromotions() kernel.Money {
	return i.unitPrice + i.AdjustmentsTotal(AdjustmentPromotion)
}

// Tax returns the summed tax adjustments pending on this item.
func (i *OrderItem) Tax() kernel.Money {
	return i.AdjustmentsTotal(AdjustmentTax)
}

// FinalPrice returns the unit price after promotions plus tax.
func (i *OrderItem) FinalPrice() kernel.Money {
	return i.UnitPriceWithPromotions() + i.Tax()
}
