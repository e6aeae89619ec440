// Package handlingrepo stores reported handling events in memory, grouped by cargo.
package handlingrepo

import (
	"context"
	"maps"
	"slices"

	"booking/internal/core/domain/model/handling"
	"booking/internal/core/domain/model/kernel"
)

// Table maps tracking ids to the events reported for that cargo, in report order.
type Table map[string][]handling.Event

// Clone returns a copy of the table that can be modified independently.
func (t Table) Clone() Table {
	if t == nil {
		return Table{}
	}
	return maps.Clone(t)
}

// Repository implements ports.HandlingEventRepository and ports.HandlingHistoryProvider.
type Repository struct {
	table Table
}

// NewRepository creates a repository that reads and writes the given table.
func NewRepository(table Table) *Repository {
	return &Repository{table: table}
}

// Add appends the event to the history of its cargo.
func (r *Repository) Add(ctx context.Context, event handling.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := event.Validate(); err != nil {
		return err
	}

	id := event.TrackingID().String()
	// Clip so a cloned table never appends into the backing array of the original.
	r.table[id] = append(slices.Clip(r.table[id]), event)
	return nil
}

// LookupHandlingHistoryOfCargo returns the history of the cargo, handling.EmptyHistory
// when nothing was reported for it.
func (r *Repository) LookupHandlingHistoryOfCargo(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (*handling.History, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	events := r.table[trackingID.String()]
	if len(events) == 0 {
		return handling.EmptyHistory, nil
	}

	return handling.NewHistory(events), nil
}
