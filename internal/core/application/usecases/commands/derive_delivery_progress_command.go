package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrDeriveDeliveryProgressCommandIsNotConstructed = errors.New(
	"DeriveDeliveryProgressCommand must be created via NewDeriveDeliveryProgressCommand constructor",
)

// DeriveDeliveryProgressCommand asks for the delivery of a cargo to be recomputed
// from its complete handling history.
type DeriveDeliveryProgressCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewDeriveDeliveryProgressCommand creates the command.
func NewDeriveDeliveryProgressCommand(trackingID kernel.TrackingID) (DeriveDeliveryProgressCommand, error) {
	cmd := DeriveDeliveryProgressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTrackingID(trackingID); err != nil {
		return DeriveDeliveryProgressCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeriveDeliveryProgressCommand) Validate() error {
	return c.guard.Validate(ErrDeriveDeliveryProgressCommandIsNotConstructed)
}

// TrackingID returns the cargo to update.
func (c DeriveDeliveryProgressCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

func (c *DeriveDeliveryProgressCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("tracking id", err)
	}
	c.trackingID = trackingID
	return nil
}
