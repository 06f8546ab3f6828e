// Package guard detects domain values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects and entities that must only be
// built through their constructor (or restored from a ledger record). The zero
// value reports "not constructed".
//
// Example:
//
//	type Coordinates struct {
//	    latitude, longitude float64
//	    guard               guard.ConstructorGuard
//	}
//
//	func NewCoordinates(lat, lon float64) (Coordinates, error) {
//	    // range checks ...
//	    return Coordinates{latitude: lat, longitude: lon, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Coordinates) Validate() error {
//	    return c.guard.Validate(ErrCoordinatesAreNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
