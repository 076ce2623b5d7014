// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the pricing core. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderCalculator: Runs the fixed adjustment pipeline (tax, promotions, re-tax, shipping)
//   - TaxCalculator: Produces tax-inclusive/exclusive price breakdowns for a price in a zone
//   - ShippingCalculator: Quotes the shipping methods an order is eligible for
//   - TaxZoneStrategy: Resolves the active tax zone for a channel and order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
