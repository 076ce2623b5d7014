// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrOrderByCodeQueryIsNotConstructed = errors.New(
	"OrderByCodeQuery must be created via NewOrderByCodeQuery constructor",
)

// OrderByCodeQuery retrieves an order by its public code. Order codes appear
// in confirmation emails and URLs, so the lookup is enumeration-safe: an
// unknown code and a code the caller may not see produce the same forbidden
// error, never a distinguishable not-found.
//
// Example:
//
//	query, err := NewOrderByCodeQuery("7Y2PBKXMRG")
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, rctx, query)
//	if errors.Is(err, errs.ErrForbidden) {
//	    // unknown code or not the caller's order; do not reveal which
//	}
type OrderByCodeQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewOrderByCodeQuery creates a validated order-by-code query.
func NewOrderByCodeQuery(code string) (OrderByCodeQuery, error) {
	if code == "" {
		return OrderByCodeQuery{}, errs.NewValueIsRequiredError("code")
	}

	return OrderByCodeQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Code returns the public order code to look up.
func (q OrderByCodeQuery) Code() string {
	return q.code
}

// Validate ensures the query was created through the constructor.
// Returns ErrOrderByCodeQueryIsNotConstructed if validation fails.
func (q OrderByCodeQuery) Validate() error {
	return q.guard.Validate(ErrOrderByCodeQueryIsNotConstructed)
}
