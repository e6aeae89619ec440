package voyage

import (
	"errors"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrVoyageIsNotConstructed is returned when validating a Voyage that was not
// created through NewVoyage.
var ErrVoyageIsNotConstructed = errors.New("Voyage must be created via NewVoyage constructor")

// Number identifies a voyage. Any string, including the empty one, is a valid number.
type Number string

// String returns the number.
func (n Number) String() string {
	return string(n)
}

// Empty represents "no voyage": an empty number and EmptySchedule.
var Empty = &Voyage{
	number:   "",
	schedule: EmptySchedule,
	guard:    guard.NewConstructorGuard(),
}

// Voyage is an entity identified by its Number and owning a Schedule.
type Voyage struct {
	number   Number
	schedule Schedule
	guard    guard.ConstructorGuard
}

// NewVoyage creates a Voyage with a constructed schedule.
//
// Example:
//
//	movement, _ := voyage.NewCarrierMovement(location.Chicago, location.Hamburg, departure, arrival)
//	schedule, _ := voyage.NewSchedule([]voyage.CarrierMovement{movement})
//	v, err := voyage.NewVoyage("CM01", schedule)
func NewVoyage(number Number, schedule Schedule) (*Voyage, error) {
	if err := schedule.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("schedule", err)
	}

	return &Voyage{
		number:   number,
		schedule: schedule,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the voyage was created through NewVoyage (or is Empty).
func (v *Voyage) Validate() error {
	if v == nil {
		return ErrVoyageIsNotConstructed
	}
	return v.guard.Validate(ErrVoyageIsNotConstructed)
}

// Number returns the identity of the voyage.
func (v *Voyage) Number() Number {
	return v.number
}

// Schedule returns the movements of the voyage.
func (v *Voyage) Schedule() Schedule {
	return v.schedule
}

// SameIdentityAs reports whether both voyages have the same number.
// A nil voyage has no identity. Empty is the same only as itself, even when a real
// voyage has an empty number.
func (v *Voyage) SameIdentityAs(other *Voyage) bool {
	if v == nil || other == nil {
		return false
	}
	return v.IsEmpty() == other.IsEmpty() && v.number == other.number
}

// IsEmpty reports whether v is nil or Empty.
func (v *Voyage) IsEmpty() bool {
	return v == nil || v == Empty
}

// String returns the voyage number.
func (v *Voyage) String() string {
	if v == nil {
		return ""
	}
	return v.number.String()
}
