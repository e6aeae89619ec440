package commands

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/location"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrBookCargoCommandIsNotConstructed = errors.New(
	"BookCargoCommand must be created via NewBookCargoCommand constructor",
)

// BookCargoCommand represents a request to book a new cargo.
//
// Example:
//
//	cmd, err := NewBookCargoCommand(location.Hongkong, location.Helsinki, deadline)
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
//
//	handler := NewBookCargoCommandHandler(uowFactory)
//	trackingID, err := handler.Handle(ctx, cmd)
type BookCargoCommand struct { //nolint:recvcheck //using for validation
	origin          location.Location
	destination     location.Location
	arrivalDeadline time.Time

	guard guard.ConstructorGuard
}

// NewBookCargoCommand creates a booking command. The route itself is validated
// when the route specification is built by the handler.
func NewBookCargoCommand(
	origin location.Location,
	destination location.Location,
	arrivalDeadline time.Time,
) (BookCargoCommand, error) {
	cmd := BookCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrigin(origin),
		cmd.setDestination(destination),
		cmd.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return BookCargoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BookCargoCommand) Validate() error {
	return c.guard.Validate(ErrBookCargoCommandIsNotConstructed)
}

// Origin returns where the cargo is picked up.
func (c BookCargoCommand) Origin() location.Location {
	return c.origin
}

// Destination returns where the cargo is delivered.
func (c BookCargoCommand) Destination() location.Location {
	return c.destination
}

// ArrivalDeadline returns the latest acceptable arrival.
func (c BookCargoCommand) ArrivalDeadline() time.Time {
	return c.arrivalDeadline
}

func (c *BookCargoCommand) setOrigin(origin location.Location) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("origin", err)
	}
	c.origin = origin
	return nil
}

func (c *BookCargoCommand) setDestination(destination location.Location) error {
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination", err)
	}
	c.destination = destination
	return nil
}

func (c *BookCargoCommand) setArrivalDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("arrival deadline")
	}
	c.arrivalDeadline = deadline
	return nil
}
