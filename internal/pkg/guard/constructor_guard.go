// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and commands so that zero values can be told apart from instances
// built through their validating constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil error and the guarded object was not constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records that an object went through its constructor.
//
// Example usage:
//
//	var ErrTourLineNotConstructed = errors.New("Line must be created via NewLine")
//
//	type Line struct {
//	    description string
//	    guard       guard.ConstructorGuard
//	}
//
//	func (l Line) Validate() error {
//	    return l.guard.Validate(ErrTourLineNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it only from
// the constructor of the owning type, after all inputs have been validated.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the owning object is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
