package commands

import (
	"context"

	"booking/internal/core/domain/model/cargo"
	"booking/internal/core/domain/model/kernel"
)

// BookCargoCommandHandler books cargos under freshly generated tracking ids.
type BookCargoCommandHandler struct {
	uowFactory CargoUoWFactory
	nextID     func() kernel.TrackingID
}

// NewBookCargoCommandHandler creates a handler that generates ids with kernel.NextTrackingID.
func NewBookCargoCommandHandler(uowFactory CargoUoWFactory) BookCargoCommandHandler {
	return BookCargoCommandHandler{
		uowFactory: uowFactory,
		nextID:     kernel.NextTrackingID,
	}
}

// Handle books the cargo and returns its tracking id. A fresh cargo is NotRouted and
// NotReceived.
func (h *BookCargoCommandHandler) Handle(ctx context.Context, cmd BookCargoCommand) (kernel.TrackingID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.TrackingID{}, err
	}

	spec, err := cargo.NewRouteSpecification(cmd.Origin(), cmd.Destination(), cmd.ArrivalDeadline())
	if err != nil {
		return kernel.TrackingID{}, err
	}

	c, err := cargo.NewCargo(h.nextID(), spec)
	if err != nil {
		return kernel.TrackingID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.TrackingID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CargoRepository().Add(ctx, c); err != nil {
		return kernel.TrackingID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.TrackingID{}, err
	}

	return c.TrackingID(), nil
}
