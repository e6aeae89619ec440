package cargo

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/location"
	"booking/internal/core/domain/model/voyage"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrLegIsNotConstructed is returned when validating a zero-value Leg.
var ErrLegIsNotConstructed = errs.NewValueIsRequiredError("leg must be created via NewLeg")

// Leg is one load/unload step of an itinerary on a single voyage.
type Leg struct { //nolint:recvcheck //using for validation
	voyage         *voyage.Voyage
	loadLocation   location.Location
	loadTime       time.Time
	unloadLocation location.Location
	unloadTime     time.Time
	guard          guard.ConstructorGuard
}

// NewLeg creates a Leg. The voyage must be a constructed, non-empty voyage, both
// locations must be constructed and neither time may be the zero time.
func NewLeg(
	v *voyage.Voyage,
	loadLocation location.Location,
	loadTime time.Time,
	unloadLocation location.Location,
	unloadTime time.Time,
) (Leg, error) {
	l := Leg{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setVoyage(v),
		l.setLoadLocation(loadLocation),
		l.setLoadTime(loadTime),
		l.setUnloadLocation(unloadLocation),
		l.setUnloadTime(unloadTime),
	); err != nil {
		return Leg{}, err
	}

	return l, nil
}

// Validate returns ErrLegIsNotConstructed for the zero value.
func (l Leg) Validate() error {
	return l.guard.Validate(ErrLegIsNotConstructed)
}

// Voyage returns the voyage the cargo travels on.
func (l Leg) Voyage() *voyage.Voyage {
	return l.voyage
}

// LoadLocation returns where the cargo is loaded.
func (l Leg) LoadLocation() location.Location {
	return l.loadLocation
}

// LoadTime returns when the cargo is loaded.
func (l Leg) LoadTime() time.Time {
	return l.loadTime
}

// UnloadLocation returns where the cargo is unloaded.
func (l Leg) UnloadLocation() location.Location {
	return l.unloadLocation
}

// UnloadTime returns when the cargo is unloaded.
func (l Leg) UnloadTime() time.Time {
	return l.unloadTime
}

// IsEqual compares voyage, load location, unload location, load time and unload time.
func (l Leg) IsEqual(other Leg) bool {
	return l.voyage.SameIdentityAs(other.voyage) &&
		l.loadLocation.SameIdentityAs(other.loadLocation) &&
		l.unloadLocation.SameIdentityAs(other.unloadLocation) &&
		l.loadTime.Equal(other.loadTime) &&
		l.unloadTime.Equal(other.unloadTime)
}

func (l *Leg) setVoyage(v *voyage.Voyage) error {
	if v.IsEmpty() {
		return errs.NewValueIsRequiredError("voyage")
	}
	if err := v.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("voyage", err)
	}
	l.voyage = v
	return nil
}

func (l *Leg) setLoadLocation(loc location.Location) error {
	if err := loc.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("load location", err)
	}
	l.loadLocation = loc
	return nil
}

func (l *Leg) setLoadTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("load time", errors.New("time is not set"))
	}
	l.loadTime = t
	return nil
}

func (l *Leg) setUnloadLocation(loc location.Location) error {
	if err := loc.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unload location", err)
	}
	l.unloadLocation = loc
	return nil
}

func (l *Leg) setUnloadTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("unload time", errors.New("time is not set"))
	}
	l.unloadTime = t
	return nil
}
