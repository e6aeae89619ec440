package commands

import (
	"context"

	"booking/internal/core/domain/model/cargo"
)

// DeriveDeliveryProgressCommandHandler recomputes the delivery of a cargo from its
// handling history. Misdirection and arrival events are published after commit.
//
// Example:
//
//	handler := NewDeriveDeliveryProgressCommandHandler(uowFactory, publisher)
//	cmd, _ := NewDeriveDeliveryProgressCommand(trackingID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery update failed: %w", err)
//	}
type DeriveDeliveryProgressCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  cargo.EventPublisher
}

// NewDeriveDeliveryProgressCommandHandler creates the handler. A nil publisher is replaced by
// cargo.NopPublisher, which drops events.
func NewDeriveDeliveryProgressCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher cargo.EventPublisher,
) DeriveDeliveryProgressCommandHandler {
	if publisher == nil {
		publisher = cargo.NopPublisher{}
	}

	return DeriveDeliveryProgressCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle looks up the history, derives the delivery and stores the cargo. When the
// delivery did not change, the cargo is not stored and nothing is published.
func (h *DeriveDeliveryProgressCommandHandler) Handle(ctx context.Context, cmd DeriveDeliveryProgressCommand) error {
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

	history, err := uow.HandlingHistoryProvider().LookupHandlingHistoryOfCargo(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	before := c.Delivery()
	events := cargo.NewEventBuffer()
	if err = c.DeriveDeliveryProgress(history, events); err != nil {
		return err
	}

	// Nothing was handled since the last derivation.
	if c.Delivery().IsEqual(before) {
		return nil
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
