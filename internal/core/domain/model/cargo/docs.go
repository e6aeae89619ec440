// Package cargo is the cargo aggregate: a booked shipment, its route and its delivery status.
//
// The package includes:
//   - Leg and Itinerary: the planned route a cargo is assigned to
//   - RouteSpecification: origin, destination and arrival deadline an itinerary must satisfy
//   - HandlingActivity: a predicted handling of the cargo
//   - RoutingStatus and TransportStatus
//   - Delivery: the status snapshot derived from specification, itinerary and handling history
//   - Cargo: the aggregate root, identified by a kernel.TrackingID
//   - AssignedToRouteEvent, MisdirectedEvent, ArrivedEvent and the EventPublisher they go to
//
// Delivery is never mutated. Every change to the specification or itinerary, and every
// new handling history, replaces it with a freshly derived snapshot:
//
//	c, _ := cargo.NewCargo(trackingID, spec)
//	_ = c.AssignToRoute(itinerary, publisher)
//	_ = c.DeriveDeliveryProgress(history, publisher)
//	status := c.Delivery().TransportStatus()
//
// A nil *Itinerary means the cargo has not been routed yet.
package cargo
