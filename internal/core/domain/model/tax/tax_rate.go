package tax

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// Category classifies purchasable variants for tax purposes, e.g. "standard"
// or "reduced". Rates are resolved per (zone, category) pair.
type Category string

// ErrTaxRateIsNotConstructed is returned when a TaxRate instance was not
// created through the NewTaxRate factory function.
var ErrTaxRateIsNotConstructed = errors.New("TaxRate must be created via NewTaxRate constructor")

// TaxRate is the percentage rate applying to a tax category within a zone.
// The value is a percentage, e.g. 20 for 20% or 17.5 for 17.5%.
type TaxRate struct {
	category Category
	zoneID   kernel.UUID
	value    float64

	guard guard.ConstructorGuard
}

// NewTaxRate creates a validated TaxRate. The value must lie in [0, 100].
func NewTaxRate(category Category, zoneID kernel.UUID, value float64) (TaxRate, error) {
	if category == "" {
		return TaxRate{}, errs.NewValueIsRequiredError("tax category")
	}
	if err := zoneID.Validate(); err != nil {
		return TaxRate{}, err
	}
	if value < 0 || value > 100 {
		return TaxRate{}, errs.NewValueIsOutOfRangeError("tax rate value", value, 0, 100)
	}

	return TaxRate{
		category: category,
		zoneID:   zoneID,
		value:    value,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the TaxRate was created through NewTaxRate.
func (r TaxRate) Validate() error {
	return r.guard.Validate(ErrTaxRateIsNotConstructed)
}

// Category returns the tax category this rate applies to.
func (r TaxRate) Category() Category {
	return r.category
}

// ZoneID returns the zone this rate applies in.
func (r TaxRate) ZoneID() kernel.UUID {
	return r.zoneID
}

// Value returns the rate as a percentage.
func (r TaxRate) Value() float64 {
	return r.value
}

// Apply returns the tax amount for a tax-exclusive price, rounded half up.
//
//	rate 20, price 1000 -> 200
//	rate 20, price 880  -> 176
func (r TaxRate) Apply(price kernel.Money) kernel.Money {
	return kernel.PercentOf(price, r.value)
}

// GrossPortion returns the tax portion contained in a tax-inclusive price,
// rounded half up: price * value / (100 + value).
func (r TaxRate) GrossPortion(priceWithTax kernel.Money) kernel.Money {
	return kernel.RoundHalfUp(float64(priceWithTax) * r.value / (100 + r.value))
}

// Description returns a human-readable label for adjustments produced from
// this rate, e.g. "tax 20%".
func (r TaxRate) Description() string {
	return fmt.Sprintf("tax %g%%", r.value)
}
