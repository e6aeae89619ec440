package services

import (
	"errors"
	"fmt"
	"time"

	"booking/internal/core/domain/model/location"
	"booking/internal/core/domain/model/voyage"
	"booking/internal/pkg/errs"
)

// VoyageBuilder assembles a Voyage movement by movement. Each movement departs from
// where the previous one arrived, so callers only name arrivals.
//
// Example usage:
//
//	v, err := services.NewVoyageBuilder("V100", location.Hongkong).
//	    AddMovement(location.Tokyo, departure, arrival).
//	    AddMovement(location.NewYork, departure2, arrival2).
//	    Build()
//
// Errors from AddMovement are collected and returned by Build.
type VoyageBuilder struct {
	number            voyage.Number
	departureLocation location.Location
	movements         []voyage.CarrierMovement
	added             int
	errs              []error
}

// NewVoyageBuilder starts a voyage with the given number departing from departureLocation.
func NewVoyageBuilder(number voyage.Number, departureLocation location.Location) *VoyageBuilder {
	b := &VoyageBuilder{
		number:            number,
		departureLocation: departureLocation,
	}

	if err := departureLocation.Validate(); err != nil {
		b.errs = append(b.errs, errs.NewValueIsRequiredErrorWithCause("departure location", err))
	}

	return b
}

// AddMovement appends a movement from the current departure location to arrivalLocation
// and makes arrivalLocation the departure of the next movement.
func (b *VoyageBuilder) AddMovement(arrivalLocation location.Location, departureTime, arrivalTime time.Time) *VoyageBuilder {
	m, err := voyage.NewCarrierMovement(b.departureLocation, arrivalLocation, departureTime, arrivalTime)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("movement %d: %w", b.added, err))
	} else {
		b.movements = append(b.movements, m)
	}

	b.added++
	b.departureLocation = arrivalLocation
	return b
}

// Build returns the voyage, or every error collected while adding movements.
// A builder without movements fails with a ValueIsInvalidError.
func (b *VoyageBuilder) Build() (*voyage.Voyage, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}

	if b.movements == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("carrier movements", errors.New("has no elements"))
	}

	schedule, err := voyage.NewSchedule(b.movements)
	if err != nil {
		return nil, err
	}

	return voyage.NewVoyage(b.number, schedule)
}
