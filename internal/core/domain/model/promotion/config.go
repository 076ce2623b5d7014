package promotion

import (
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// Condition and action codes recognized by FromConfig. Stored promotions
// reference behavior by code plus numeric arguments, so new promotions can
// be authored without code changes as long as they compose these parts.
const (
	ConditionMinimumSubtotal  = "minimum_subtotal"
	ConditionCustomerRequired = "customer_required"

	ActionItemPercentageDiscount  = "item_percentage_discount"
	ActionOrderPercentageDiscount = "order_percentage_discount"
	ActionOrderFixedDiscount      = "order_fixed_discount"
)

// ConditionConfig is the persisted form of a condition: a code naming the
// predicate and its numeric arguments.
type ConditionConfig struct {
	Code string             `json:"code"`
	Args map[string]float64 `json:"args,omitempty"`
}

// ActionConfig is the persisted form of an action.
type ActionConfig struct {
	Code string             `json:"code"`
	Args map[string]float64 `json:"args,omitempty"`
}

// FromConfig assembles a Promotion from its persisted condition and action
// configs. Unknown codes fail assembly rather than being silently skipped:
// a half-assembled promotion would discount differently than authored.
func FromConfig(
	id kernel.UUID,
	code string,
	conditions []ConditionConfig,
	actions []ActionConfig,
) (*Promotion, error) {
	var built []Condition
	for _, cfg := range conditions {
		c, err := buildCondition(cfg)
		if err != nil {
			return nil, err
		}
		built = append(built, c)
	}

	var itemActions []ItemAction
	var orderActions []OrderAction
	for _, cfg := range actions {
		switch cfg.Code {
		case ActionItemPercentageDiscount:
			itemActions = append(itemActions, ItemPercentageDiscount{Percentage: cfg.Args["percentage"]})
		case ActionOrderPercentageDiscount:
			orderActions = append(orderActions, OrderPercentageDiscount{Percentage: cfg.Args["percentage"]})
		case ActionOrderFixedDiscount:
			orderActions = append(orderActions, OrderFixedDiscount{Amount: kernel.Money(cfg.Args["amount"])})
		default:
			return nil, errs.NewValueIsInvalidErrorWithCause("promotion action",
				fmt.Errorf("unknown action code %q", cfg.Code))
		}
	}

	return NewPromotion(id, code, built, itemActions, orderActions)
}

func buildCondition(cfg ConditionConfig) (Condition, error) {
	switch cfg.Code {
	case ConditionMinimumSubtotal:
		return MinimumSubtotalCondition{Minimum: kernel.Money(cfg.Args["minimum"])}, nil
	case ConditionCustomerRequired:
		return CustomerRequiredCondition{}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("promotion condition",
			fmt.Errorf("unknown condition code %q", cfg.Code))
	}
}
