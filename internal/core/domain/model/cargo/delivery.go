package cargo

import (
	"time"

	"booking/internal/core/domain/model/handling"
	"booking/internal/core/domain/model/location"
	"booking/internal/core/domain/model/voyage"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when validating a zero-value Delivery.
var ErrDeliveryIsNotConstructed = errs.NewValueIsRequiredError("delivery must be created via DerivedFrom")

// Delivery is the status snapshot of a cargo: where it is, whether it is on track and
// what should happen to it next. It is derived from a route specification, an optional
// itinerary and the last handling event, and is replaced rather than updated.
type Delivery struct {
	transportStatus         TransportStatus
	lastKnownLocation       location.Location
	currentVoyage           *voyage.Voyage
	misdirected             bool
	eta                     time.Time
	hasETA                  bool
	nextExpectedActivity    HandlingActivity
	hasNextExpectedActivity bool
	isUnloadedAtDestination bool
	routingStatus           RoutingStatus
	calculatedAt            time.Time
	lastEvent               handling.Event
	hasLastEvent            bool
	guard                   guard.ConstructorGuard
}

// DerivedFrom computes a Delivery from the most recently completed event of the history.
//
// Parameters:
//   - specification: the current route specification, required
//   - itinerary: the current itinerary, nil when the cargo is not routed
//   - history: the handling history of the cargo, required; use handling.EmptyHistory
//     for a cargo that was never handled
//
// Returns:
//   - Delivery: the derived snapshot
//   - error: ValueIsRequiredError if specification or history is missing
func DerivedFrom(specification RouteSpecification, itinerary *Itinerary, history *handling.History) (Delivery, error) {
	if err := specification.Validate(); err != nil {
		return Delivery{}, errs.NewValueIsRequiredErrorWithCause("route specification", err)
	}
	if history == nil {
		return Delivery{}, errs.NewValueIsRequiredError("handling history")
	}

	lastEvent, ok := history.MostRecentlyCompletedEvent()
	return newDelivery(lastEvent, ok, itinerary, specification), nil
}

// UpdateOnRouting recomputes the snapshot for a new specification or itinerary. The last
// handling event is kept since no handling has happened.
func (d Delivery) UpdateOnRouting(specification RouteSpecification, itinerary *Itinerary) (Delivery, error) {
	if err := specification.Validate(); err != nil {
		return Delivery{}, errs.NewValueIsRequiredErrorWithCause("route specification", err)
	}
	return newDelivery(d.lastEvent, d.hasLastEvent, itinerary, specification), nil
}

func newDelivery(lastEvent handling.Event, hasLastEvent bool, itinerary *Itinerary, specification RouteSpecification) Delivery {
	d := Delivery{
		calculatedAt: time.Now(),
		lastEvent:    lastEvent,
		hasLastEvent: hasLastEvent,
		guard:        guard.NewConstructorGuard(),
	}

	d.misdirected = d.calculateMisdirectionStatus(itinerary)
	d.routingStatus = calculateRoutingStatus(itinerary, specification)
	d.transportStatus = d.calculateTransportStatus()
	d.lastKnownLocation = d.calculateLastKnownLocation()
	d.currentVoyage = d.calculateCurrentVoyage()
	d.eta, d.hasETA = d.calculateETA(itinerary)
	d.nextExpectedActivity, d.hasNextExpectedActivity = d.calculateNextExpectedActivity(specification, itinerary)
	d.isUnloadedAtDestination = d.calculateUnloadedAtDestination(specification)

	return d
}

// Validate returns ErrDeliveryIsNotConstructed for the zero value.
func (d Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// TransportStatus returns where the cargo physically is.
func (d Delivery) TransportStatus() TransportStatus {
	return d.transportStatus
}

// LastKnownLocation returns the location of the last event, location.Unknown if there is none.
func (d Delivery) LastKnownLocation() location.Location {
	return d.lastKnownLocation
}

// CurrentVoyage returns the voyage the cargo is on board of, voyage.Empty when it is not
// on board a carrier.
func (d Delivery) CurrentVoyage() *voyage.Voyage {
	return d.currentVoyage
}

// IsMisdirected reports whether the last event contradicts the itinerary.
func (d Delivery) IsMisdirected() bool {
	return d.misdirected
}

// EstimatedTimeOfArrival returns the final arrival date of the itinerary while the
// cargo is on track.
func (d Delivery) EstimatedTimeOfArrival() (time.Time, bool) {
	return d.eta, d.hasETA
}

// NextExpectedActivity returns the handling expected next while the cargo is on track.
func (d Delivery) NextExpectedActivity() (HandlingActivity, bool) {
	return d.nextExpectedActivity, d.hasNextExpectedActivity
}

// IsUnloadedAtDestination reports whether the last event is an unload at the destination.
func (d Delivery) IsUnloadedAtDestination() bool {
	return d.isUnloadedAtDestination
}

// RoutingStatus returns whether the cargo is routed and whether the route fits.
func (d Delivery) RoutingStatus() RoutingStatus {
	return d.routingStatus
}

// CalculatedAt returns when the snapshot was derived.
func (d Delivery) CalculatedAt() time.Time {
	return d.calculatedAt
}

// LastEvent returns the handling event the snapshot was derived from.
func (d Delivery) LastEvent() (handling.Event, bool) {
	return d.lastEvent, d.hasLastEvent
}

// IsEqual compares every derived field. The calculation time is not significant, so
// deriving twice from the same inputs gives equal snapshots.
func (d Delivery) IsEqual(other Delivery) bool {
	return d.transportStatus == other.transportStatus &&
		d.lastKnownLocation.SameIdentityAs(other.lastKnownLocation) &&
		sameVoyage(d.currentVoyage, other.currentVoyage) &&
		d.misdirected == other.misdirected &&
		d.hasETA == other.hasETA && d.eta.Equal(other.eta) &&
		d.hasNextExpectedActivity == other.hasNextExpectedActivity &&
		(!d.hasNextExpectedActivity || d.nextExpectedActivity.IsEqual(other.nextExpectedActivity)) &&
		d.isUnloadedAtDestination == other.isUnloadedAtDestination &&
		d.routingStatus == other.routingStatus &&
		d.hasLastEvent == other.hasLastEvent &&
		(!d.hasLastEvent || d.lastEvent.IsEqual(other.lastEvent))
}

func (d Delivery) onTrack() bool {
	return d.routingStatus == Routed && !d.misdirected
}

func (d Delivery) calculateMisdirectionStatus(itinerary *Itinerary) bool {
	if !d.hasLastEvent || itinerary == nil {
		return false
	}
	return !itinerary.IsExpected(d.lastEvent)
}

func calculateRoutingStatus(itinerary *Itinerary, specification RouteSpecification) RoutingStatus {
	if itinerary == nil {
		return NotRouted
	}
	if specification.IsSatisfiedBy(itinerary) {
		return Routed
	}
	return Misrouted
}

func (d Delivery) calculateTransportStatus() TransportStatus {
	if !d.hasLastEvent {
		return NotReceived
	}

	switch d.lastEvent.Type() {
	case handling.Load:
		return OnboardCarrier
	case handling.Unload, handling.Receive, handling.Customs:
		return InPort
	case handling.Claim:
		return Claimed
	default:
		return UnknownTransportStatus
	}
}

func (d Delivery) calculateLastKnownLocation() location.Location {
	if !d.hasLastEvent {
		return location.Unknown
	}
	return d.lastEvent.Location()
}

func (d Delivery) calculateCurrentVoyage() *voyage.Voyage {
	if d.hasLastEvent && d.transportStatus == OnboardCarrier {
		return d.lastEvent.Voyage()
	}
	return voyage.Empty
}

func (d Delivery) calculateETA(itinerary *Itinerary) (time.Time, bool) {
	if !d.onTrack() {
		return time.Time{}, false
	}
	return itinerary.FinalArrivalDate()
}

func (d Delivery) calculateNextExpectedActivity(
	specification RouteSpecification,
	itinerary *Itinerary,
) (HandlingActivity, bool) {
	if !d.onTrack() {
		return HandlingActivity{}, false
	}

	if !d.hasLastEvent {
		return expect(handling.Receive, specification.Origin(), nil)
	}

	legs := itinerary.legs
	at := d.lastEvent.Location()

	switch d.lastEvent.Type() {
	case handling.Load:
		for _, l := range legs {
			if l.loadLocation.SameIdentityAs(at) {
				return expect(handling.Unload, l.unloadLocation, l.voyage)
			}
		}
		return HandlingActivity{}, false

	case handling.Unload:
		for i, l := range legs {
			if !l.unloadLocation.SameIdentityAs(at) {
				continue
			}
			if i == len(legs)-1 {
				return expect(handling.Claim, l.unloadLocation, nil)
			}
			// The next load is expected without naming its voyage.
			return expect(handling.Load, legs[i+1].loadLocation, nil)
		}
		return HandlingActivity{}, false

	case handling.Receive:
		first := legs[0]
		return expect(handling.Load, first.loadLocation, first.voyage)

	default:
		return HandlingActivity{}, false
	}
}

func (d Delivery) calculateUnloadedAtDestination(specification RouteSpecification) bool {
	return d.hasLastEvent &&
		d.lastEvent.Type() == handling.Unload &&
		d.lastEvent.Location().SameIdentityAs(specification.Destination())
}

func expect(eventType handling.EventType, loc location.Location, v *voyage.Voyage) (HandlingActivity, bool) {
	activity, err := NewHandlingActivity(eventType, loc, v)
	if err != nil {
		return HandlingActivity{}, false
	}
	return activity, true
}
