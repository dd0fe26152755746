// Package guard provides ConstructorGuard, a marker that lets value objects,
// commands and queries detect whether they were built through their
// constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value is not usable.
// The constructor sets it with NewConstructorGuard; the type's Validate method
// calls guard.Validate with its own "not constructed" error.
//
// Example:
//
//	var ErrPageIsNotConstructed = errors.New("Page must be created via NewPage")
//
//	type Page struct {
//	    number int
//	    guard  guard.ConstructorGuard
//	}
//
//	func (p Page) Validate() error {
//	    return p.guard.Validate(ErrPageIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
