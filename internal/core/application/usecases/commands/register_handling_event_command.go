package commands

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/handling"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/location"
	"booking/internal/core/domain/model/voyage"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrRegisterHandlingEventCommandIsNotConstructed = errors.New(
	"RegisterHandlingEventCommand must be created via NewRegisterHandlingEventCommand constructor",
)

// RegisterHandlingEventCommand reports that a cargo was handled.
//
// The voyage rules of the event type are checked when the handler builds the
// handling event, so a Load without a voyage fails there rather than here.
type RegisterHandlingEventCommand struct { //nolint:recvcheck //using for validation
	trackingID     kernel.TrackingID
	eventType      handling.EventType
	location       location.Location
	completionTime time.Time
	voyage         *voyage.Voyage

	guard guard.ConstructorGuard
}

// NewRegisterHandlingEventCommand creates the command. The voyage may be nil.
func NewRegisterHandlingEventCommand(
	trackingID kernel.TrackingID,
	eventType handling.EventType,
	loc location.Location,
	completionTime time.Time,
	v *voyage.Voyage,
) (RegisterHandlingEventCommand, error) {
	cmd := RegisterHandlingEventCommand{
		voyage: v,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setEventType(eventType),
		cmd.setLocation(loc),
		cmd.setCompletionTime(completionTime),
	); err != nil {
		return RegisterHandlingEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterHandlingEventCommand) Validate() error {
	return c.guard.Validate(ErrRegisterHandlingEventCommandIsNotConstructed)
}

// TrackingID returns the handled cargo.
func (c RegisterHandlingEventCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// EventType returns the kind of handling.
func (c RegisterHandlingEventCommand) EventType() handling.EventType {
	return c.eventType
}

// Location returns where the handling took place.
func (c RegisterHandlingEventCommand) Location() location.Location {
	return c.location
}

// CompletionTime returns when the handling happened.
func (c RegisterHandlingEventCommand) CompletionTime() time.Time {
	return c.completionTime
}

// Voyage returns the voyage, nil if none was given.
func (c RegisterHandlingEventCommand) Voyage() *voyage.Voyage {
	return c.voyage
}

func (c *RegisterHandlingEventCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tracking id", err)
	}
	c.trackingID = trackingID
	return nil
}

func (c *RegisterHandlingEventCommand) setEventType(eventType handling.EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	c.eventType = eventType
	return nil
}

func (c *RegisterHandlingEventCommand) setLocation(loc location.Location) error {
	if err := loc.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("location", err)
	}
	c.location = loc
	return nil
}

func (c *RegisterHandlingEventCommand) setCompletionTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("completion time")
	}
	c.completionTime = t
	return nil
}
