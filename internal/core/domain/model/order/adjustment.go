package order

import "commerce/internal/core/domain/model/kernel"

// AdjustmentType classifies a monetary delta applied to an item or order.
type AdjustmentType string

const (
	// AdjustmentTax is tax added on top of a tax-exclusive price.
	AdjustmentTax AdjustmentType = "TAX"

	// AdjustmentPromotion is a discount produced by a promotion action.
	AdjustmentPromotion AdjustmentType = "PROMOTION"

	// AdjustmentShipping is a delta applied to the shipping charge.
	AdjustmentShipping AdjustmentType = "SHIPPING"
)

// Adjustment is a signed monetary delta in minor currency units.
// Discounts carry negative amounts, charges positive ones. Amounts are never
// fractional; rounding happens before an Adjustment is materialized.
//
// Adjustment is a plain value object with exported fields so persistence and
// transport layers can serialize it directly.
type Adjustment struct {
	Type        AdjustmentType `json:"type"`
	Description string         `json:"description"`
	Amount      kernel.Money   `json:"amount"`
}
