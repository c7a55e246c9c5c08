// Package guard provides the ConstructorGuard helper for value objects,
// entities, and commands. Embedding a ConstructorGuard in a struct makes it possible
// to detect whether the struct was created through its constructor function or as a
// zero value, so that domain invariants established at construction can be trusted.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation error
// is passed for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as constructed through its designated
// constructor. The zero value represents an unconstructed object and fails
// validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed. Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
