package handling

import (
	"errors"
	"fmt"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/location"
	"booking/internal/core/domain/model/voyage"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrEventIsNotConstructed is returned when validating a zero-value Event.
var ErrEventIsNotConstructed = errs.NewValueIsRequiredError("handling event must be created via NewEvent")

// Event is a single reported handling of a cargo.
//
// An Event is a value object. Equality (IsEqual) compares type, location, completion time,
// cargo and voyage; the registration time is not significant, so the same real-world
// event reported twice is one event.
type Event struct { //nolint:recvcheck //using for validation
	eventType        EventType
	location         location.Location
	registrationTime time.Time
	completionTime   time.Time
	trackingID       kernel.TrackingID
	voyage           *voyage.Voyage
	guard            guard.ConstructorGuard
}

// NewEvent creates a handling event.
//
// Parameters:
//   - trackingID: the handled cargo
//   - eventType: a valid EventType
//   - loc: where the handling took place
//   - registrationTime: when the event was recorded
//   - completionTime: when the handling actually happened
//   - v: the voyage; required for Load and Unload, must be nil (or voyage.Empty) otherwise
//
// Returns:
//   - Event: the created event
//   - error: joined validation errors; a missing tracking id, location or required voyage
//     is a ValueIsRequiredError, an unset time, invalid type or prohibited voyage is a
//     ValueIsInvalidError
func NewEvent(
	trackingID kernel.TrackingID,
	eventType EventType,
	loc location.Location,
	registrationTime time.Time,
	completionTime time.Time,
	v *voyage.Voyage,
) (Event, error) {
	e := Event{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setTrackingID(trackingID),
		e.setEventType(eventType),
		e.setLocation(loc),
		e.setRegistrationTime(registrationTime),
		e.setCompletionTime(completionTime),
		e.setVoyage(eventType, v),
	); err != nil {
		return Event{}, err
	}

	return e, nil
}

// Validate returns ErrEventIsNotConstructed for the zero value.
func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// Type returns the kind of handling.
func (e Event) Type() EventType {
	return e.eventType
}

// Location returns where the handling took place.
func (e Event) Location() location.Location {
	return e.location
}

// RegistrationTime returns when the event was recorded.
func (e Event) RegistrationTime() time.Time {
	return e.registrationTime
}

// CompletionTime returns when the handling actually happened.
func (e Event) CompletionTime() time.Time {
	return e.completionTime
}

// TrackingID returns the handled cargo.
func (e Event) TrackingID() kernel.TrackingID {
	return e.trackingID
}

// Voyage returns the voyage of a Load or Unload event and voyage.Empty for other types.
// The result is never nil.
func (e Event) Voyage() *voyage.Voyage {
	if e.voyage == nil {
		return voyage.Empty
	}
	return e.voyage
}

// IsEqual reports whether both events describe the same real-world handling.
func (e Event) IsEqual(other Event) bool {
	return e.eventType == other.eventType &&
		e.location.SameIdentityAs(other.location) &&
		e.completionTime.Equal(other.completionTime) &&
		e.trackingID.IsEqual(other.trackingID) &&
		sameVoyage(e.Voyage(), other.Voyage())
}

// String formats the event for logs, e.g. "Load at Chicago [USCHI] on CM01 (ABC123)".
func (e Event) String() string {
	s := fmt.Sprintf("%s at %s", e.eventType, e.location)
	if e.voyage != nil {
		s += " on " + e.voyage.String()
	}
	return fmt.Sprintf("%s (%s)", s, e.trackingID)
}

func sameVoyage(a, b *voyage.Voyage) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	return a.SameIdentityAs(b)
}

func (e *Event) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tracking id", err)
	}
	e.trackingID = trackingID
	return nil
}

func (e *Event) setEventType(eventType EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}

func (e *Event) setLocation(loc location.Location) error {
	if err := loc.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("location", err)
	}
	e.location = loc
	return nil
}

func (e *Event) setRegistrationTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("registration time", errors.New("time is not set"))
	}
	e.registrationTime = t
	return nil
}

func (e *Event) setCompletionTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("completion time", errors.New("time is not set"))
	}
	e.completionTime = t
	return nil
}

func (e *Event) setVoyage(eventType EventType, v *voyage.Voyage) error {
	switch {
	case eventType.RequiresVoyage():
		if v.IsEmpty() {
			return errs.NewValueIsRequiredErrorWithCause(
				"voyage", fmt.Errorf("%s events require a voyage", eventType))
		}
		if err := v.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("voyage", err)
		}
		e.voyage = v
	case eventType.ProhibitsVoyage():
		if !v.IsEmpty() {
			return errs.NewValueIsInvalidErrorWithCause(
				"voyage", fmt.Errorf("%s events must not have a voyage", eventType))
		}
	}
	return nil
}
