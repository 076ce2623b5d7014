package kernel

import "math"

// Money is a monetary amount in minor currency units (e.g. cents).
// All pricing arithmetic in the domain is integer arithmetic over Money;
// fractional intermediate results exist only inside the rounding helpers
// below and are rounded exactly once, at the point an adjustment amount
// is materialized.
//
// Amounts are signed: discounts are negative, charges are positive.
type Money int64

// RoundHalfUp converts a fractional minor-unit amount to Money using the
// round-half-up rule (0.5 rounds away from zero). This is the single
// rounding rule used throughout the pricing pipeline.
func RoundHalfUp(v float64) Money {
	if v < 0 {
		return -Money(math.Floor(-v + 0.5))
	}
	return Money(math.Floor(v + 0.5))
}

// PercentOf returns pct percent of amount, rounded half up.
//
// Example:
//
//	kernel.PercentOf(1200, 10) // 120
//	kernel.PercentOf(880, 20)  // 176
func PercentOf(amount Money, pct float64) Money {
	return RoundHalfUp(float64(amount) * pct / 100)
}
