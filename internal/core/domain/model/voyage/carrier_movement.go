package voyage

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/location"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrCarrierMovementIsNotConstructed is returned when validating a zero-value CarrierMovement.
var ErrCarrierMovementIsNotConstructed = errs.NewValueIsRequiredError(
	"carrier movement must be created via NewCarrierMovement")

// CarrierMovement is a vessel moving from one location to another.
type CarrierMovement struct { //nolint:recvcheck //using for validation
	departureLocation location.Location
	arrivalLocation   location.Location
	departureTime     time.Time
	arrivalTime       time.Time
	guard             guard.ConstructorGuard
}

// NewCarrierMovement creates a CarrierMovement. Both locations must be constructed and
// neither time may be the zero time.
func NewCarrierMovement(
	departureLocation location.Location,
	arrivalLocation location.Location,
	departureTime time.Time,
	arrivalTime time.Time,
) (CarrierMovement, error) {
	m := CarrierMovement{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setDepartureLocation(departureLocation),
		m.setArrivalLocation(arrivalLocation),
		m.setDepartureTime(departureTime),
		m.setArrivalTime(arrivalTime),
	); err != nil {
		return CarrierMovement{}, err
	}

	return m, nil
}

// Validate returns ErrCarrierMovementIsNotConstructed for the zero value.
func (m CarrierMovement) Validate() error {
	return m.guard.Validate(ErrCarrierMovementIsNotConstructed)
}

// DepartureLocation returns where the movement starts.
func (m CarrierMovement) DepartureLocation() location.Location {
	return m.departureLocation
}

// ArrivalLocation returns where the movement ends.
func (m CarrierMovement) ArrivalLocation() location.Location {
	return m.arrivalLocation
}

// DepartureTime returns when the movement starts.
func (m CarrierMovement) DepartureTime() time.Time {
	return m.departureTime
}

// ArrivalTime returns when the movement ends.
func (m CarrierMovement) ArrivalTime() time.Time {
	return m.arrivalTime
}

// IsEqual compares departure location, arrival location, departure time and arrival time.
func (m CarrierMovement) IsEqual(other CarrierMovement) bool {
	return m.departureLocation.SameIdentityAs(other.departureLocation) &&
		m.arrivalLocation.SameIdentityAs(other.arrivalLocation) &&
		m.departureTime.Equal(other.departureTime) &&
		m.arrivalTime.Equal(other.arrivalTime)
}

func (m *CarrierMovement) setDepartureLocation(l location.Location) error {
	if err := l.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("departure location", err)
	}
	m.departureLocation = l
	return nil
}

func (m *CarrierMovement) setArrivalLocation(l location.Location) error {
	if err := l.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("arrival location", err)
	}
	m.arrivalLocation = l
	return nil
}

func (m *CarrierMovement) setDepartureTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("departure time", errors.New("time is not set"))
	}
	m.departureTime = t
	return nil
}

func (m *CarrierMovement) setArrivalTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("arrival time", errors.New("time is not set"))
	}
	m.arrivalTime = t
	return nil
}
