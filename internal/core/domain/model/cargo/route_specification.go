package cargo

import (
	"errors"
	"fmt"
	"time"

	"booking/internal/core/domain/model/location"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrRouteSpecificationIsNotConstructed is returned when validating a zero-value RouteSpecification.
var ErrRouteSpecificationIsNotConstructed = errs.NewValueIsRequiredError(
	"route specification must be created via NewRouteSpecification")

// RouteSpecification is the contract an itinerary must fulfil: leave from the origin,
// arrive at the destination and do so before the arrival deadline.
type RouteSpecification struct { //nolint:recvcheck //using for validation
	origin          location.Location
	destination     location.Location
	arrivalDeadline time.Time
	guard           guard.ConstructorGuard
}

// NewRouteSpecification creates a RouteSpecification.
//
// Parameters:
//   - origin: where the cargo is picked up
//   - destination: where the cargo is delivered, different from origin
//   - arrivalDeadline: the latest acceptable arrival, not the zero time
//
// Returns:
//   - RouteSpecification: the created specification
//   - error: ValueIsRequiredError for unconstructed locations, ValueIsInvalidError when
//     origin equals destination or the deadline is not set
func NewRouteSpecification(
	origin location.Location,
	destination location.Location,
	arrivalDeadline time.Time,
) (RouteSpecification, error) {
	s := RouteSpecification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return RouteSpecification{}, err
	}

	if s.origin.SameIdentityAs(s.destination) {
		return RouteSpecification{}, errs.NewValueIsInvalidErrorWithCause(
			"destination", fmt.Errorf("origin and destination can't be the same: %s", origin))
	}

	return s, nil
}

// Validate returns ErrRouteSpecificationIsNotConstructed for the zero value.
func (s RouteSpecification) Validate() error {
	return s.guard.Validate(ErrRouteSpecificationIsNotConstructed)
}

// Origin returns where the cargo is picked up.
func (s RouteSpecification) Origin() location.Location {
	return s.origin
}

// Destination returns where the cargo is delivered.
func (s RouteSpecification) Destination() location.Location {
	return s.destination
}

// ArrivalDeadline returns the latest acceptable arrival.
func (s RouteSpecification) ArrivalDeadline() time.Time {
	return s.arrivalDeadline
}

// IsSatisfiedBy reports whether the itinerary departs from the origin, arrives at the
// destination and arrives strictly before the deadline. An empty itinerary never
// satisfies a specification.
func (s RouteSpecification) IsSatisfiedBy(itinerary *Itinerary) bool {
	finalArrival, ok := itinerary.FinalArrivalDate()
	if !ok {
		return false
	}
	return s.origin.SameIdentityAs(itinerary.InitialDepartureLocation()) &&
		s.destination.SameIdentityAs(itinerary.FinalArrivalLocation()) &&
		s.arrivalDeadline.After(finalArrival)
}

// IsEqual compares origin, destination and arrival deadline.
func (s RouteSpecification) IsEqual(other RouteSpecification) bool {
	return s.origin.SameIdentityAs(other.origin) &&
		s.destination.SameIdentityAs(other.destination) &&
		s.arrivalDeadline.Equal(other.arrivalDeadline)
}

func (s *RouteSpecification) setOrigin(origin location.Location) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin", err)
	}
	s.origin = origin
	return nil
}

func (s *RouteSpecification) setDestination(destination location.Location) error {
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination", err)
	}
	s.destination = destination
	return nil
}

func (s *RouteSpecification) setArrivalDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("arrival deadline", errors.New("arrival deadline is required"))
	}
	s.arrivalDeadline = deadline
	return nil
}
