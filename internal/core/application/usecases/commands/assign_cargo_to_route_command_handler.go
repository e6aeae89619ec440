package commands

import (
	"context"

	"booking/internal/core/domain/model/cargo"
)

// AssignCargoToRouteCommandHandler routes a cargo and publishes the resulting
// AssignedToRouteEvent after the change is committed.
type AssignCargoToRouteCommandHandler struct {
	uowFactory CargoUoWFactory
	publisher  cargo.EventPublisher
}

// NewAssignCargoToRouteCommandHandler creates the handler. A nil publisher is replaced by
// cargo.NopPublisher, which drops events.
func NewAssignCargoToRouteCommandHandler(
	uowFactory CargoUoWFactory,
	publisher cargo.EventPublisher,
) AssignCargoToRouteCommandHandler {
	if publisher == nil {
		publisher = cargo.NopPublisher{}
	}

	return AssignCargoToRouteCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the cargo, assigns the itinerary and stores the result.
func (h *AssignCargoToRouteCommandHandler) Handle(ctx context.Context, cmd AssignCargoToRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cargoRepo := uow.CargoRepository()
	c, err := cargoRepo.Get(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	events := cargo.NewEventBuffer()
	if err = c.AssignToRoute(cmd.Itinerary(), events); err != nil {
		return err
	}

	if err = cargoRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	events.Flush(h.publisher)
	return nil
}
