// Package guard provides a small helper for enforcing constructor usage on
// value objects and commands. A zero-value ConstructorGuard fails validation,
// so embedding one makes directly instantiated structs detectable.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its owner was built through a constructor.
// The zero value is invalid; obtain instances through NewConstructorGuard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructedErr, or ErrDefaultConstructorGuard when nil is passed.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrDefaultConstructorGuard
}
