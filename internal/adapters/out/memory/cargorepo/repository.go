package cargorepo

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"booking/internal/core/domain/model/cargo"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
)

// Repository implements ports.CargoRepository on top of a Table.
type Repository struct {
	table Table
}

// NewRepository creates a repository that reads and writes the given table.
func NewRepository(table Table) *Repository {
	return &Repository{table: table}
}

// Add stores a new cargo. Adding a tracking id twice returns a ValueIsInvalidError.
func (r *Repository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.TrackingID().String()
	if _, ok := r.table[id]; ok {
		return errs.NewValueIsInvalidErrorWithCause("cargo", fmt.Errorf("%s already exists", id))
	}

	r.table[id] = fromDomain(aggregate)
	return nil
}

// Update replaces the stored state of an existing cargo.
func (r *Repository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.TrackingID().String()
	if _, ok := r.table[id]; !ok {
		return errs.NewObjectNotFoundError("cargo", id)
	}

	r.table[id] = fromDomain(aggregate)
	return nil
}

// Get retrieves a cargo by tracking id.
func (r *Repository) Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	record, ok := r.table[trackingID.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("cargo", trackingID.String())
	}

	return toDomain(record)
}

// GetAll retrieves every cargo ordered by tracking id.
func (r *Repository) GetAll(ctx context.Context) ([]*cargo.Cargo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ids := slices.Sorted(maps.Keys(r.table))

	cargos := make([]*cargo.Cargo, 0, len(ids))
	for _, id := range ids {
		c, err := toDomain(r.table[id])
		if err != nil {
			return nil, err
		}
		cargos = append(cargos, c)
	}

	return cargos, nil
}
