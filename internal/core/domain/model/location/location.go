package location

import (
	"errors"
	"fmt"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when validating a zero-value Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError("location must be created via NewLocation")

// Unknown stands for the absence of location data, e.g. the last known location of a
// cargo that has never been handled. It is equal to itself and to no real location.
var Unknown = Location{
	unLocode: UnLocode{code: "XXXXX"},
	name:     "Unknown location",
	guard:    guard.NewConstructorGuard(),
}

// Location is a place identified by its UnLocode. Two locations with the same code are
// the same location regardless of name; compare with SameIdentityAs.
type Location struct { //nolint:recvcheck //using for validation
	unLocode UnLocode
	name     string
	guard    guard.ConstructorGuard
}

// NewLocation creates a Location.
//
// Parameters:
//   - unLocode: a constructed UnLocode
//   - name: a non-empty display name
//
// Returns:
//   - Location: the created location
//   - error: joined validation errors if the code is not constructed or the name is empty
func NewLocation(unLocode UnLocode, name string) (Location, error) {
	l := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(l.setUnLocode(unLocode), l.setName(name)); err != nil {
		return Location{}, err
	}

	return l, nil
}

// Validate returns ErrLocationIsNotConstructed for the zero value.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// UnLocode returns the identity of the location.
func (l Location) UnLocode() UnLocode {
	return l.unLocode
}

// Name returns the display name.
func (l Location) Name() string {
	return l.name
}

// SameIdentityAs reports whether both locations have the same UnLocode.
func (l Location) SameIdentityAs(other Location) bool {
	return l.unLocode == other.unLocode
}

// IsUnknown reports whether l is the Unknown location.
func (l Location) IsUnknown() bool {
	return l.SameIdentityAs(Unknown)
}

// String formats the location as "Name [CODE]".
func (l Location) String() string {
	return fmt.Sprintf("%s [%s]", l.name, l.unLocode)
}

func (l *Location) setUnLocode(unLocode UnLocode) error {
	if err := unLocode.Validate(); err != nil {
		return err
	}
	if unLocode.IsEqual(Unknown.unLocode) {
		return errs.NewValueIsInvalidErrorWithCause(
			"code", fmt.Errorf("%s is reserved for the unknown location", unLocode))
	}
	l.unLocode = unLocode
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}
