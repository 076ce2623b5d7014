// Package catalog holds the read-side product data the pricing core consumes.
// Variants are configured elsewhere; the core only reads their list price and
// tax category when building order lines.
package catalog

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/tax"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// ErrVariantIsNotConstructed is returned when a Variant was not created
// through NewVariant.
var ErrVariantIsNotConstructed = errors.New(
	"Variant must be created via NewVariant constructor")

// Variant is a purchasable product variant with its channel list price.
// The price carries no tax; whether tax is added on top or extracted from it
// is decided per channel when the order is priced.
type Variant struct {
	id          kernel.UUID
	sku         string
	name        string
	price       kernel.Money
	taxCategory tax.Category

	guard guard.ConstructorGuard
}

// NewVariant creates a validated Variant.
func NewVariant(id kernel.UUID, sku, name string, price kernel.Money, taxCategory tax.Category) (Variant, error) {
	if err := id.Validate(); err != nil {
		return Variant{}, err
	}
	if sku == "" {
		return Variant{}, errs.NewValueIsRequiredError("sku")
	}
	if price < 0 {
		return Variant{}, errs.NewValueIsInvalidError("variant price")
	}
	if taxCategory == "" {
		return Variant{}, errs.NewValueIsRequiredError("tax category")
	}

	return Variant{
		id:          id,
		sku:         sku,
		name:        name,
		price:       price,
		taxCategory: taxCategory,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the variant was created through NewVariant.
func (v Variant) Validate() error {
	return v.guard.Validate(ErrVariantIsNotConstructed)
}

// ID returns the variant identifier.
func (v Variant) ID() kernel.UUID {
	return v.id
}

// SKU returns the stock keeping unit code.
func (v Variant) SKU() string {
	return v.sku
}

// Name returns the display name.
func (v Variant) Name() string {
	return v.name
}

// Price returns the channel list price in minor units.
func (v Variant) Price() kernel.Money {
	return v.price
}

// TaxCategory returns the tax category used to resolve the variant's tax rate.
func (v Variant) TaxCategory() tax.Category {
	return v.taxCategory
}
