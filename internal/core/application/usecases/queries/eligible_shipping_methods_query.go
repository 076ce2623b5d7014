package queries

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var ErrEligibleShippingMethodsQueryIsNotConstructed = errors.New(
	"EligibleShippingMethodsQuery must be created via NewEligibleShippingMethodsQuery constructor",
)

// EligibleShippingMethodsQuery quotes the shipping methods the session's
// active order currently qualifies for, in rank order.
type EligibleShippingMethodsQuery struct {
	guard guard.ConstructorGuard
}

// NewEligibleShippingMethodsQuery creates a query for shipping quotes.
func NewEligibleShippingMethodsQuery() EligibleShippingMethodsQuery {
	return EligibleShippingMethodsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrEligibleShippingMethodsQueryIsNotConstructed if validation fails.
func (q EligibleShippingMethodsQuery) Validate() error {
	return q.guard.Validate(ErrEligibleShippingMethodsQueryIsNotConstructed)
}
