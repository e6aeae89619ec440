package commands

import (
	"context"
)

// SpecifyNewRouteCommandHandler replaces the route specification of a cargo. The
// delivery is recomputed synchronously against the current itinerary.
type SpecifyNewRouteCommandHandler struct {
	uowFactory CargoUoWFactory
}

// NewSpecifyNewRouteCommandHandler creates the handler.
func NewSpecifyNewRouteCommandHandler(uowFactory CargoUoWFactory) SpecifyNewRouteCommandHandler {
	return SpecifyNewRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the cargo, specifies the new route and stores the result.
// An unknown tracking id yields an error wrapping errs.ErrObjectNotFound.
func (h *SpecifyNewRouteCommandHandler) Handle(ctx context.Context, cmd SpecifyNewRouteCommand) error {
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

	if err = c.SpecifyNewRoute(cmd.RouteSpecification()); err != nil {
		return err
	}

	if err = cargoRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
