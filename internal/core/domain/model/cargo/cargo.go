package cargo

import (
	"errors"

	"booking/internal/core/domain/model/handling"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/location"
	"booking/internal/pkg/errs"
)

var (
	// ErrCargoIsNotConstructed is returned when validating a Cargo that was not created
	// through NewCargo or RestoreCargo.
	ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo constructor")
)

// Cargo is the aggregate root of a booked shipment.
//
// A cargo is identified by its tracking id. Its origin is taken from the first route
// specification and never changes. The specification and itinerary may be replaced;
// every replacement, as well as every new handling history, recomputes the Delivery
// before the method returns.
//
// Cargo is not safe for concurrent mutation; callers serialize changes per tracking id.
type Cargo struct {
	trackingID kernel.TrackingID

	origin location.Location

	routeSpecification RouteSpecification

	// nil until the cargo is assigned to a route
	itinerary *Itinerary

	delivery Delivery

	isConstructed bool
}

// NewCargo books a cargo. The delivery is derived right away from an empty itinerary
// and an empty handling history, so a new cargo is NotRouted and NotReceived.
//
// Returns:
//   - *Cargo: the booked cargo
//   - error: ValueIsRequiredError if the tracking id or route specification is missing
func NewCargo(trackingID kernel.TrackingID, routeSpecification RouteSpecification) (*Cargo, error) {
	c := &Cargo{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setTrackingID(trackingID),
		c.setRouteSpecification(routeSpecification),
	); err != nil {
		return nil, err
	}

	c.origin = routeSpecification.Origin()

	delivery, err := DerivedFrom(c.routeSpecification, nil, handling.EmptyHistory)
	if err != nil {
		return nil, err
	}
	c.delivery = delivery

	return c, nil
}

// RestoreCargo rebuilds a cargo from persisted state without deriving a new delivery.
// The itinerary may be nil.
func RestoreCargo(
	trackingID kernel.TrackingID,
	origin location.Location,
	routeSpecification RouteSpecification,
	itinerary *Itinerary,
	delivery Delivery,
) (*Cargo, error) {
	c := &Cargo{
		itinerary:     itinerary,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setTrackingID(trackingID),
		c.setOrigin(origin),
		c.setRouteSpecification(routeSpecification),
		c.setDelivery(delivery),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate returns ErrCargoIsNotConstructed for a nil or zero-value cargo.
func (c *Cargo) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCargoIsNotConstructed
	}
	return nil
}

// IsEqual reports whether both cargos have the same tracking id.
func (c *Cargo) IsEqual(other *Cargo) bool {
	return other != nil && c.trackingID.IsEqual(other.trackingID)
}

// TrackingID returns the identity of the cargo.
func (c *Cargo) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Origin returns the location the cargo was booked from.
func (c *Cargo) Origin() location.Location {
	return c.origin
}

// RouteSpecification returns the current route specification.
func (c *Cargo) RouteSpecification() RouteSpecification {
	return c.routeSpecification
}

// Itinerary returns the current itinerary, nil if the cargo is not routed.
func (c *Cargo) Itinerary() *Itinerary {
	return c.itinerary
}

// Delivery returns the current delivery snapshot.
func (c *Cargo) Delivery() Delivery {
	return c.delivery
}

// String returns the tracking id.
func (c *Cargo) String() string {
	return c.trackingID.String()
}

// SpecifyNewRoute replaces the route specification and recomputes the delivery
// against the current itinerary.
func (c *Cargo) SpecifyNewRoute(routeSpecification RouteSpecification) error {
	if err := routeSpecification.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("route specification", err)
	}

	delivery, err := c.delivery.UpdateOnRouting(routeSpecification, c.itinerary)
	if err != nil {
		return err
	}

	c.routeSpecification = routeSpecification
	c.delivery = delivery
	return nil
}

// AssignToRoute attaches a new itinerary, recomputes the delivery and publishes an
// AssignedToRouteEvent carrying the previous itinerary. A nil publisher is allowed.
func (c *Cargo) AssignToRoute(itinerary *Itinerary, publisher EventPublisher) error {
	if itinerary.IsEmpty() {
		return errs.NewValueIsRequiredError("itinerary")
	}

	delivery, err := c.delivery.UpdateOnRouting(c.routeSpecification, itinerary)
	if err != nil {
		return err
	}

	event := AssignedToRouteEvent{cargo: c, oldItinerary: c.itinerary}
	c.itinerary = itinerary
	c.delivery = delivery

	publish(publisher, event)
	return nil
}

// DeriveDeliveryProgress recomputes the delivery from the complete handling history.
// When the delivery changes it publishes a MisdirectedEvent if the cargo is misdirected,
// otherwise an ArrivedEvent if it has been unloaded at its destination. An unchanged
// delivery keeps the current snapshot and publishes nothing.
func (c *Cargo) DeriveDeliveryProgress(history *handling.History, publisher EventPublisher) error {
	delivery, err := DerivedFrom(c.routeSpecification, c.itinerary, history)
	if err != nil {
		return err
	}
	if delivery.IsEqual(c.delivery) {
		return nil
	}
	c.delivery = delivery

	switch {
	case delivery.IsMisdirected():
		publish(publisher, MisdirectedEvent{cargo: c})
	case delivery.IsUnloadedAtDestination():
		publish(publisher, ArrivedEvent{cargo: c})
	}
	return nil
}

func publish(publisher EventPublisher, event DomainEvent) {
	if publisher == nil {
		return
	}
	publisher.Publish(event)
}

func (c *Cargo) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tracking id", err)
	}
	c.trackingID = trackingID
	return nil
}

func (c *Cargo) setOrigin(origin location.Location) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin", err)
	}
	c.origin = origin
	return nil
}

func (c *Cargo) setRouteSpecification(routeSpecification RouteSpecification) error {
	if err := routeSpecification.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("route specification", err)
	}
	c.routeSpecification = routeSpecification
	return nil
}

func (c *Cargo) setDelivery(delivery Delivery) error {
	if err := delivery.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery", err)
	}
	c.delivery = delivery
	return nil
}
