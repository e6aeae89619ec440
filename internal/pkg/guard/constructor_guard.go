// Package guard provides ConstructorGuard, a marker that lets value objects and
// entities detect whether they were built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when no
// specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a private field in domain types. Its zero value
// reports "not constructed", so a struct literal or a zero value of the owning type
// fails validation while instances returned by the constructor pass.
//
// Example:
//
//	var ErrLegIsNotConstructed = errors.New("Leg must be created via NewLeg")
//
//	type Leg struct {
//	    loadLocation location.Location
//	    guard        guard.ConstructorGuard
//	}
//
//	func NewLeg(loadLocation location.Location) (Leg, error) {
//	    return Leg{loadLocation: loadLocation, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (l Leg) Validate() error {
//	    return l.guard.Validate(ErrLegIsNotConstructed)
//	}
//
// The guard is a single immutable bool, so it is safe to copy and to share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a guard created by NewConstructorGuard. For a zero guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
