// Package order provides the Order aggregate and its lifecycle state machine.
// Order is the mutable entity the pricing pipeline operates on: an ordered
// sequence of lines, each with unit-level items carrying pending adjustments,
// plus order-level adjustments, a shipping selection and derived totals.
//
// Key business rules:
//   - Totals are always derived, never accumulated: after any completed
//     pipeline run, subTotal equals the sum of line total prices and
//     subTotalBeforeTax equals subTotal minus the summed line tax.
//   - Adjustments of a given type are replaced, never stacked, on each
//     pipeline pass (clear-then-apply).
//   - The lifecycle state changes only through the StateMachine; no other
//     component assigns it.
//   - Orders without lines have zero totals and no adjustments.
//
// The package follows Domain-Driven Design principles: private fields,
// factory constructors, and Restore functions for persistence rehydration.
package order
