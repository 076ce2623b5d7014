package services

import (
	"context"
	"sort"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/shipping"
	"commerce/internal/pkg/errs"
)

// ShippingMethodSource lists the shipping methods configured for the channel.
type ShippingMethodSource interface {
	FindAllShippingMethods(ctx context.Context) ([]shipping.ShippingMethod, error)
}

// ShippingCalculator is a domain service that quotes the shipping methods an
// order is currently eligible for. Eligibility is evaluated against the order
// subtotal, and quotes come back ordered by rank so the first quote is the
// preferred default. Methods sharing a rank keep their configured order.
type ShippingCalculator struct {
	methods ShippingMethodSource
}

// NewShippingCalculator creates a new ShippingCalculator instance.
func NewShippingCalculator(methods ShippingMethodSource) (ShippingCalculator, error) {
	if methods == nil {
		return ShippingCalculator{}, errs.NewValueIsRequiredError("methods")
	}

	return ShippingCalculator{methods: methods}, nil
}

// EligibleQuotes returns a quote per shipping method the order qualifies for,
// sorted by method rank. The result is empty when no method matches.
func (c ShippingCalculator) EligibleQuotes(ctx context.Context, o *order.Order) ([]shipping.Quote, error) {
	methods, err := c.methods.FindAllShippingMethods(ctx)
	if err != nil {
		return nil, err
	}

	var quotes []shipping.Quote
	for _, method := range methods {
		if method.EligibleFor(o.SubTotal()) {
			quotes = append(quotes, shipping.Quote{Method: method, Price: method.Price()})
		}
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Method.Rank() < quotes[j].Method.Rank()
	})

	return quotes, nil
}
