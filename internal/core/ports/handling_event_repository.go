package ports

import (
	"context"

	"booking/internal/core/domain/model/handling"
	"booking/internal/core/domain/model/kernel"
)

// HandlingEventRepository records reported handling events.
type HandlingEventRepository interface {
	// Add appends an event to the history of its cargo. Duplicates are kept;
	// the history collapses them.
	Add(ctx context.Context, event handling.Event) error
}

// HandlingHistoryProvider supplies the complete handling history of a cargo.
type HandlingHistoryProvider interface {
	// LookupHandlingHistoryOfCargo returns every event reported for the cargo,
	// handling.EmptyHistory if there are none.
	LookupHandlingHistoryOfCargo(ctx context.Context, trackingID kernel.TrackingID) (*handling.History, error)
}
