package services

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/tax"
	"commerce/internal/pkg/errs"
)

// TaxRateSource looks up the tax rate configured for a category within a zone.
type TaxRateSource interface {
	FindTaxRate(ctx context.Context, category tax.Category, zoneID kernel.UUID) (tax.TaxRate, error)
}

// TaxedPrice is the breakdown of a single price against the applicable tax rate.
// Price carries the value as it is displayed on the channel: with tax included
// when the channel sells gross prices, without tax otherwise.
type TaxedPrice struct {
	Price            kernel.Money
	PriceIncludesTax bool
	PriceWithTax     kernel.Money
	PriceWithoutTax  kernel.Money
	TaxRate          float64
	Description      string
}

// Tax returns the absolute tax portion of the price.
func (p TaxedPrice) Tax() kernel.Money {
	return p.PriceWithTax - p.PriceWithoutTax
}

// TaxCalculator is a domain service that produces the tax breakdown of a price.
//
// The applicable rate is resolved from the tax category of the priced variant
// and the active tax zone. Whether the input price already contains tax is
// dictated by the channel of the request, not by the caller.
type TaxCalculator struct {
	rates TaxRateSource
}

// NewTaxCalculator creates a new TaxCalculator instance.
func NewTaxCalculator(rates TaxRateSource) (TaxCalculator, error) {
	if rates == nil {
		return TaxCalculator{}, errs.NewValueIsRequiredError("rates")
	}

	return TaxCalculator{rates: rates}, nil
}

// Calculate resolves the rate for the category in the zone and splits the price
// into its net and gross parts. For tax-inclusive channels the input price is
// treated as gross, for tax-exclusive channels as net.
func (c TaxCalculator) Calculate(
	ctx context.Context,
	price kernel.Money,
	category tax.Category,
	zone tax.Zone,
	rctx kernel.RequestContext,
) (TaxedPrice, error) {
	rate, err := c.rates.FindTaxRate(ctx, category, zone.ID())
	if err != nil {
		return TaxedPrice{}, err
	}

	taxed := TaxedPrice{
		Price:            price,
		PriceIncludesTax: rctx.Channel().PricesIncludeTax(),
		TaxRate:          rate.Value(),
		Description:      rate.Description(),
	}

	if taxed.PriceIncludesTax {
		taxed.PriceWithTax = price
		taxed.PriceWithoutTax = price - rate.GrossPortion(price)
	} else {
		taxed.PriceWithTax = price + rate.Apply(price)
		taxed.PriceWithoutTax = price
	}

	return taxed, nil
}
