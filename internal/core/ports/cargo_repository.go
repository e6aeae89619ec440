// Package ports defines the interfaces the application layer needs from infrastructure.
// Cargo and handling events are separate aggregates and get separate repositories.
package ports

import (
	"context"

	"booking/internal/core/domain/model/cargo"
	"booking/internal/core/domain/model/kernel"
)

// CargoRepository defines the persistence contract for cargo aggregates.
type CargoRepository interface {
	// Add stores a newly booked cargo. A cargo with the same tracking id must not exist.
	Add(ctx context.Context, aggregate *cargo.Cargo) error

	// Update stores the current state of an existing cargo.
	Update(ctx context.Context, aggregate *cargo.Cargo) error

	// Get returns the cargo with the given tracking id, or an error wrapping
	// errs.ErrObjectNotFound.
	Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error)

	// GetAll returns every cargo ordered by tracking id.
	GetAll(ctx context.Context) ([]*cargo.Cargo, error)
}
