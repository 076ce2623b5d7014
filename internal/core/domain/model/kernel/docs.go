// Package kernel provides core domain primitives shared across the commerce
// domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: Integer minor-currency-unit amounts with a single, pinned rounding rule
//   - Channel: The sales-context partition a request operates in
//   - Session and RequestContext: The per-request identity every mutating operation requires
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
