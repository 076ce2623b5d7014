package promotion

import (
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// ItemPercentageDiscount discounts each unit item by a percentage of its
// current final price (price after promotions plus tax at evaluation time).
// Because the discount lands on the item, it lowers the taxable base and the
// subsequent tax pass recomputes against the discounted price.
type ItemPercentageDiscount struct {
	Percentage float64
}

// AmountForItem implements ItemAction.
func (a ItemPercentageDiscount) AmountForItem(item *order.OrderItem, _ *order.OrderLine) kernel.Money {
	return -kernel.PercentOf(item.FinalPrice(), a.Percentage)
}

// OrderPercentageDiscount discounts the order by a percentage of its current
// subtotal. The adjustment attaches to the order itself and reduces the
// amount payable without altering line prices or their tax.
type OrderPercentageDiscount struct {
	Percentage float64
}

// AmountForOrder implements OrderAction.
func (a OrderPercentageDiscount) AmountForOrder(o *order.Order) kernel.Money {
	return -kernel.PercentOf(o.SubTotal(), a.Percentage)
}

// OrderFixedDiscount discounts the order by a fixed amount, capped at the
// current subtotal so an order never totals negative from one action.
type OrderFixedDiscount struct {
	Amount kernel.Money
}

// AmountForOrder implements OrderAction.
func (a OrderFixedDiscount) AmountForOrder(o *order.Order) kernel.Money {
	amount := a.Amount
	if amount > o.SubTotal() {
		amount = o.SubTotal()
	}
	return -amount
}
