package commands

import (
	"errors"

	"booking/internal/core/domain/model/cargo"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrSpecifyNewRouteCommandIsNotConstructed = errors.New(
	"SpecifyNewRouteCommand must be created via NewSpecifyNewRouteCommand constructor",
)

// SpecifyNewRouteCommand changes the route specification of a booked cargo,
// for example when the customer changes the destination.
type SpecifyNewRouteCommand struct { //nolint:recvcheck //using for validation
	trackingID         kernel.TrackingID
	routeSpecification cargo.RouteSpecification

	guard guard.ConstructorGuard
}

// NewSpecifyNewRouteCommand creates the command.
func NewSpecifyNewRouteCommand(
	trackingID kernel.TrackingID,
	routeSpecification cargo.RouteSpecification,
) (SpecifyNewRouteCommand, error) {
	cmd := SpecifyNewRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setRouteSpecification(routeSpecification),
	); err != nil {
		return SpecifyNewRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SpecifyNewRouteCommand) Validate() error {
	return c.guard.Validate(ErrSpecifyNewRouteCommandIsNotConstructed)
}

// TrackingID returns the cargo to reroute.
func (c SpecifyNewRouteCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// RouteSpecification returns the new specification.
func (c SpecifyNewRouteCommand) RouteSpecification() cargo.RouteSpecification {
	return c.routeSpecification
}

func (c *SpecifyNewRouteCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tracking id", err)
	}
	c.trackingID = trackingID
	return nil
}

func (c *SpecifyNewRouteCommand) setRouteSpecification(spec cargo.RouteSpecification) error {
	if err := spec.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("route specification", err)
	}
	c.routeSpecification = spec
	return nil
}
