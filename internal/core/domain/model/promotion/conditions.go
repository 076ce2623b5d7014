package promotion

import (
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// MinimumSubtotalCondition matches orders whose subtotal has reached a
// threshold. The subtotal compared is the tax-inclusive one current at
// evaluation time.
type MinimumSubtotalCondition struct {
	Minimum kernel.Money
}

// Matches implements Condition.
func (c MinimumSubtotalCondition) Matches(o *order.Order) bool {
	return o.SubTotal() >= c.Minimum
}

// CustomerRequiredCondition matches orders that have a customer attached,
// gating promotions reserved for identified buyers.
type CustomerRequiredCondition struct{}

// Matches implements Condition.
func (c CustomerRequiredCondition) Matches(o *order.Order) bool {
	return o.Customer() != nil
}
