package services

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/promotion"
	"commerce/internal/core/domain/model/tax"
	"commerce/internal/pkg/errs"
)

// ZoneSource lists the tax zones known to the channel.
type ZoneSource interface {
	FindAllZones(ctx context.Context) ([]tax.Zone, error)
}

// PromotionSource lists the promotions currently active on the channel.
type PromotionSource interface {
	FindActivePromotions(ctx context.Context) ([]*promotion.Promotion, error)
}

// OrderCalculator is a domain service that brings an order's prices up to date.
//
// Every mutation of an order's contents runs the same pipeline:
//
//  1. Determine the active tax zone.
//  2. Apply taxes to every item.
//  3. Apply the active promotions, item-level first, then order-level.
//  4. Re-apply taxes, since promotions change the taxable base.
//  5. Quote shipping and keep the order's method when it is still eligible.
//
// The pipeline clears each adjustment type before re-applying it, so running
// it twice on an unchanged order produces identical totals.
type OrderCalculator struct {
	zones        ZoneSource
	zoneStrategy TaxZoneStrategy
	taxes        TaxCalculator
	promotions   PromotionSource
	shipping     ShippingCalculator
}

// NewOrderCalculator creates a new OrderCalculator instance.
func NewOrderCalculator(
	zones ZoneSource,
	zoneStrategy TaxZoneStrategy,
	taxes TaxCalculator,
	promotions PromotionSource,
	shipping ShippingCalculator,
) (OrderCalculator, error) {
	if zones == nil {
		return OrderCalculator{}, errs.NewValueIsRequiredError("zones")
	}
	if zoneStrategy == nil {
		return OrderCalculator{}, errs.NewValueIsRequiredError("zoneStrategy")
	}
	if promotions == nil {
		return OrderCalculator{}, errs.NewValueIsRequiredError("promotions")
	}

	return OrderCalculator{
		zones:        zones,
		zoneStrategy: zoneStrategy,
		taxes:        taxes,
		promotions:   promotions,
		shipping:     shipping,
	}, nil
}

// ApplyPriceAdjustments runs the full adjustment pipeline on the order,
// mutating its lines, adjustments, shipping and totals in place.
func (c OrderCalculator) ApplyPriceAdjustments(
	ctx context.Context,
	o *order.Order,
	rctx kernel.RequestContext,
) error {
	zones, err := c.zones.FindAllZones(ctx)
	if err != nil {
		return err
	}

	zone, err := c.zoneStrategy.DetermineZone(ctx, rctx, zones)
	if err != nil {
		return err
	}

	// Each run restarts from the entered prices: promotion adjustments left
	// over from the previous run are dropped before the first tax pass so
	// taxes are never computed on an already-discounted base.
	o.ClearAdjustments()
	for _, line := range o.Lines() {
		line.ClearAdjustments(order.AdjustmentPromotion)
	}

	if o.IsEmpty() {
		o.RecalculateTotals()
		return nil
	}

	if err := c.applyTaxes(ctx, o, zone, rctx); err != nil {
		return err
	}

	if err := c.applyPromotions(ctx, o); err != nil {
		return err
	}

	// Promotions changed the taxable base, so taxes are computed again.
	if err := c.applyTaxes(ctx, o, zone, rctx); err != nil {
		return err
	}

	if err := c.applyShipping(ctx, o); err != nil {
		return err
	}

	o.RecalculateTotals()

	return nil
}

func (c OrderCalculator) applyTaxes(
	ctx context.Context,
	o *order.Order,
	zone tax.Zone,
	rctx kernel.RequestContext,
) error {
	for _, line := range o.Lines() {
		line.ClearAdjustments(order.AdjustmentTax)

		for _, item := range line.Items() {
			taxed, err := c.taxes.Calculate(ctx, item.UnitPriceWithPromotions(), line.TaxCategory(), zone, rctx)
			if err != nil {
				return err
			}

			line.SetTaxRate(taxed.TaxRate)
			line.SetPriceIncludesTax(taxed.PriceIncludesTax)

			if !taxed.PriceIncludesTax {
				item.AddAdjustment(order.Adjustment{
					Type:        order.AdjustmentTax,
					Description: taxed.Description,
					Amount:      taxed.Tax(),
				})
			}
		}
	}

	o.RecalculateTotals()

	return nil
}

func (c OrderCalculator) applyPromotions(ctx context.Context, o *order.Order) error {
	promotions, err := c.promotions.FindActivePromotions(ctx)
	if err != nil {
		return err
	}

	// Item-level actions first. Totals are refreshed after every promotion so
	// the next one is tested against the order it would actually apply to.
	for _, promo := range promotions {
		if !promo.Test(o) {
			continue
		}

		for _, line := range o.Lines() {
			for _, item := range line.Items() {
				if adjustment := promo.ApplyToItem(item, line); adjustment != nil {
					item.AddAdjustment(*adjustment)
				}
			}
		}
		o.RecalculateTotals()
	}

	for _, promo := range promotions {
		if !promo.Test(o) {
			continue
		}

		if adjustment := promo.ApplyToOrder(o); adjustment != nil {
			o.AddAdjustment(*adjustment)
		}
	}

	return nil
}

func (c OrderCalculator) applyShipping(ctx context.Context, o *order.Order) error {
	quotes, err := c.shipping.EligibleQuotes(ctx, o)
	if err != nil {
		return err
	}

	// No eligible method leaves the order's shipping untouched.
	if len(quotes) == 0 {
		return nil
	}

	selected := quotes[0]
	if methodID := o.ShippingMethodID(); methodID != nil {
		for _, quote := range quotes {
			if quote.Method.ID().IsEqual(*methodID) {
				selected = quote
				break
			}
		}
	}

	return o.SetShippingQuote(selected.Method.ID(), selected.Price)
}
