// Package tax provides the value objects consumed by tax resolution:
// geographic zones, tax categories and the rates that apply to a
// (zone, category) pair.
//
// Rates are administered externally; the core only consumes already-resolved
// instances to compute amounts. All amounts are integer minor currency units
// and rounding follows the single round-half-up rule from the kernel package.
package tax
