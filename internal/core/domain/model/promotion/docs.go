// Package promotion provides the rule bundles the pricing pipeline evaluates:
// an applicability predicate over the order plus discount actions at item or
// order granularity.
//
// Promotions are authored and stored externally; they arrive at the pipeline
// already filtered to the active channel and time window. The engine applies
// them in the order supplied by the caller with no internal priority
// resolution, so multiple eligible promotions stack in list order.
package promotion
