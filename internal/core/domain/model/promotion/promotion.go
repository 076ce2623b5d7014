package promotion

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// ErrPromotionIsNotConstructed is returned when a Promotion instance was not
// created through the NewPromotion factory function.
var ErrPromotionIsNotConstructed = errors.New("Promotion must be created via NewPromotion constructor")

// Condition is an applicability predicate evaluated against the whole order.
// A promotion tests true only when every condition matches.
type Condition interface {
	Matches(o *order.Order) bool
}

// ItemAction produces a per-item discount amount. Amounts are negative for
// discounts; a zero return yields no adjustment.
type ItemAction interface {
	AmountForItem(item *order.OrderItem, line *order.OrderLine) kernel.Money
}

// OrderAction produces an order-level discount amount.
type OrderAction interface {
	AmountForOrder(o *order.Order) kernel.Money
}

// Promotion is a rule bundle: zero or more conditions gating zero or more
// discount actions. A promotion may act at item granularity, order
// granularity, or both.
type Promotion struct {
	id           kernel.UUID
	code         string
	conditions   []Condition
	itemActions  []ItemAction
	orderActions []OrderAction

	guard guard.ConstructorGuard
}

// NewPromotion creates a validated Promotion. At least one action of either
// granularity is required; a promotion with no actions can never adjust a price.
func NewPromotion(
	id kernel.UUID,
	code string,
	conditions []Condition,
	itemActions []ItemAction,
	orderActions []OrderAction,
) (*Promotion, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("promotion code")
	}
	if len(itemActions) == 0 && len(orderActions) == 0 {
		return nil, errs.NewValueIsRequiredError("promotion actions")
	}

	return &Promotion{
		id:           id,
		code:         code,
		conditions:   conditions,
		itemActions:  itemActions,
		orderActions: orderActions,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Promotion was created through NewPromotion.
func (p *Promotion) Validate() error {
	if p == nil {
		return ErrPromotionIsNotConstructed
	}
	return p.guard.Validate(ErrPromotionIsNotConstructed)
}

// ID returns the promotion's unique identifier.
func (p *Promotion) ID() kernel.UUID {
	return p.id
}

// Code returns the promotion code used as the adjustment description.
func (p *Promotion) Code() string {
	return p.code
}

// Test reports whether every condition matches the order.
func (p *Promotion) Test(o *order.Order) bool {
	for _, c := range p.conditions {
		if !c.Matches(o) {
			return false
		}
	}
	return true
}

// ApplyToItem evaluates the item-level actions against one item and returns
// the resulting adjustment, or nil when the promotion does not act at item
// granularity or the summed amount is zero.
func (p *Promotion) ApplyToItem(item *order.OrderItem, line *order.OrderLine) *order.Adjustment {
	var amount kernel.Money
	for _, a := range p.itemActions {
		amount += a.AmountForItem(item, line)
	}
	if amount == 0 {
		return nil
	}

	return &order.Adjustment{
		Type:        order.AdjustmentPromotion,
		Description: p.code,
		Amount:      amount,
	}
}

// ApplyToOrder evaluates the order-level actions and returns the resulting
// adjustment, or nil when the promotion does not act at order granularity or
// the summed amount is zero.
func (p *Promotion) ApplyToOrder(o *order.Order) *order.Adjustment {
	var amount kernel.Money
	for _, a := range p.orderActions {
		amount += a.AmountForOrder(o)
	}
	if amount == 0 {
		return nil
	}

	return &order.Adjustment{
		Type:        order.AdjustmentPromotion,
		Description: p.code,
		Amount:      amount,
	}
}
