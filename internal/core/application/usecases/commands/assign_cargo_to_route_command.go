package commands

import (
	"errors"

	"booking/internal/core/domain/model/cargo"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrAssignCargoToRouteCommandIsNotConstructed = errors.New(
	"AssignCargoToRouteCommand must be created via NewAssignCargoToRouteCommand constructor",
)

// AssignCargoToRouteCommand attaches a chosen itinerary to a cargo.
type AssignCargoToRouteCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID
	itinerary  *cargo.Itinerary

	guard guard.ConstructorGuard
}

// NewAssignCargoToRouteCommand creates the command. The itinerary is required.
func NewAssignCargoToRouteCommand(
	trackingID kernel.TrackingID,
	itinerary *cargo.Itinerary,
) (AssignCargoToRouteCommand, error) {
	cmd := AssignCargoToRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setItinerary(itinerary),
	); err != nil {
		return AssignCargoToRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCargoToRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignCargoToRouteCommandIsNotConstructed)
}

// TrackingID returns the cargo to route.
func (c AssignCargoToRouteCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Itinerary returns the itinerary to assign.
func (c AssignCargoToRouteCommand) Itinerary() *cargo.Itinerary {
	return c.itinerary
}

func (c *AssignCargoToRouteCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tracking id", err)
	}
	c.trackingID = trackingID
	return nil
}

func (c *AssignCargoToRouteCommand) setItinerary(itinerary *cargo.Itinerary) error {
	if itinerary.IsEmpty() {
		return errs.NewValueIsRequiredError("itinerary")
	}
	c.itinerary = itinerary
	return nil
}
