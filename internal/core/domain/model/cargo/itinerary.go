package cargo

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"booking/internal/core/domain/model/handling"
	"booking/internal/core/domain/model/location"
	"booking/internal/pkg/errs"
)

// Itinerary is the planned route of a cargo: a non-empty ordered sequence of legs.
//
// A nil *Itinerary stands for "not routed". All methods accept a nil receiver and
// treat it as an itinerary without legs: it starts and ends at location.Unknown,
// has no final arrival date and expects every handling event.
type Itinerary struct {
	legs []Leg
}

// NewItinerary creates an Itinerary from at least one constructed leg. The slice is copied.
//
// Returns:
//   - ValueIsRequiredError if legs is nil or contains a zero Leg
//   - ValueIsInvalidError if legs is empty
func NewItinerary(legs []Leg) (*Itinerary, error) {
	if legs == nil {
		return nil, errs.NewValueIsRequiredError("legs")
	}
	if len(legs) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("legs", errors.New("the itinerary cannot be empty"))
	}

	var validationErrs []error
	for i, l := range legs {
		if err := l.Validate(); err != nil {
			validationErrs = append(validationErrs, fmt.Errorf("leg %d: %w", i, err))
		}
	}
	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	return &Itinerary{legs: slices.Clone(legs)}, nil
}

// Legs returns a copy of the legs in order.
func (i *Itinerary) Legs() []Leg {
	if i == nil {
		return nil
	}
	return slices.Clone(i.legs)
}

// IsEmpty reports whether the itinerary has no legs.
func (i *Itinerary) IsEmpty() bool {
	return i == nil || len(i.legs) == 0
}

// InitialDepartureLocation returns the load location of the first leg.
func (i *Itinerary) InitialDepartureLocation() location.Location {
	if i.IsEmpty() {
		return location.Unknown
	}
	return i.legs[0].loadLocation
}

// FinalArrivalLocation returns the unload location of the last leg.
func (i *Itinerary) FinalArrivalLocation() location.Location {
	if i.IsEmpty() {
		return location.Unknown
	}
	return i.legs[len(i.legs)-1].unloadLocation
}

// FinalArrivalDate returns the unload time of the last leg. The boolean is false
// for an empty itinerary.
func (i *Itinerary) FinalArrivalDate() (time.Time, bool) {
	if i.IsEmpty() {
		return time.Time{}, false
	}
	return i.legs[len(i.legs)-1].unloadTime, true
}

// IsExpected reports whether the handling event is consistent with this itinerary.
//
//   - Receive is expected at the load location of the first leg.
//   - Claim is expected at the unload location of the last leg.
//   - Load is expected where some leg loads on the event's voyage.
//   - Unload is expected where some leg unloads from the event's voyage.
//   - Customs is always expected.
func (i *Itinerary) IsExpected(event handling.Event) bool {
	if i.IsEmpty() {
		return true
	}

	switch event.Type() {
	case handling.Receive:
		return i.legs[0].loadLocation.SameIdentityAs(event.Location())
	case handling.Claim:
		return i.legs[len(i.legs)-1].unloadLocation.SameIdentityAs(event.Location())
	case handling.Load:
		return slices.ContainsFunc(i.legs, func(l Leg) bool {
			return l.loadLocation.SameIdentityAs(event.Location()) && l.voyage.SameIdentityAs(event.Voyage())
		})
	case handling.Unload:
		return slices.ContainsFunc(i.legs, func(l Leg) bool {
			return l.unloadLocation.SameIdentityAs(event.Location()) && l.voyage.SameIdentityAs(event.Voyage())
		})
	default:
		return true
	}
}

// IsEqual compares the legs pairwise. Two nil itineraries are equal.
func (i *Itinerary) IsEqual(other *Itinerary) bool {
	if i == nil || other == nil {
		return i == nil && other == nil
	}
	return slices.EqualFunc(i.legs, other.legs, Leg.IsEqual)
}
