// Package guard provides ConstructorGuard, which makes zero-value domain objects and
// commands detectable so they fail validation instead of being used half-initialized.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs that must be created through their constructor.
//
// Example usage:
//
//	type ProcessOrdersCommand struct {
//	    storeIDs []int64
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c ProcessOrdersCommand) Validate() error {
//	    return c.guard.Validate(ErrProcessOrdersCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) for a zero-value guard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
