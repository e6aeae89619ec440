package commands

import (
	"context"
	"time"

	"booking/internal/core/domain/model/handling"
)

// RegisterHandlingEventCommandHandler records handling events for booked cargos.
//
// The delivery of the cargo is not touched here: handling events are a separate
// aggregate, and the delivery is re-derived later from the full history by
// DeriveDeliveryProgressCommandHandler.
type RegisterHandlingEventCommandHandler struct {
	uowFactory HandlingUoWFactory
	now        func() time.Time
}

// NewRegisterHandlingEventCommandHandler creates the handler. Events are registered
// at the current time.
func NewRegisterHandlingEventCommandHandler(uowFactory HandlingUoWFactory) RegisterHandlingEventCommandHandler {
	return RegisterHandlingEventCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle validates that the cargo exists and stores the event.
// An unknown tracking id yields an error wrapping errs.ErrObjectNotFound.
func (h *RegisterHandlingEventCommandHandler) Handle(ctx context.Context, cmd RegisterHandlingEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := handling.NewEvent(
		cmd.TrackingID(),
		cmd.EventType(),
		cmd.Location(),
		h.now(),
		cmd.CompletionTime(),
		cmd.Voyage(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.CargoRepository().Get(ctx, cmd.TrackingID()); err != nil {
		return err
	}

	if err = uow.HandlingEventRepository().Add(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
