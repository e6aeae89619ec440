package voyage

import (
	"errors"
	"fmt"
	"slices"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrScheduleIsNotConstructed is returned when validating a zero-value Schedule.
var ErrScheduleIsNotConstructed = errs.NewValueIsRequiredError("schedule must be created via NewSchedule")

// EmptySchedule has no carrier movements. It exists only as the schedule of Empty;
// NewSchedule never returns an empty schedule.
var EmptySchedule = Schedule{guard: guard.NewConstructorGuard()}

// Schedule is the ordered sequence of carrier movements of a voyage.
type Schedule struct {
	carrierMovements []CarrierMovement
	guard            guard.ConstructorGuard
}

// NewSchedule creates a Schedule from at least one constructed carrier movement.
// The slice is copied.
//
// Returns:
//   - ValueIsRequiredError if movements is nil or contains a zero CarrierMovement
//   - ValueIsInvalidError if movements is empty
func NewSchedule(movements []CarrierMovement) (Schedule, error) {
	if movements == nil {
		return Schedule{}, errs.NewValueIsRequiredError("carrier movements")
	}
	if len(movements) == 0 {
		return Schedule{}, errs.NewValueIsInvalidErrorWithCause("carrier movements", errors.New("has no elements"))
	}

	var validationErrs []error
	for i, m := range movements {
		if err := m.Validate(); err != nil {
			validationErrs = append(validationErrs, fmt.Errorf("carrier movement %d: %w", i, err))
		}
	}
	if err := errors.Join(validationErrs...); err != nil {
		return Schedule{}, err
	}

	return Schedule{
		carrierMovements: slices.Clone(movements),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrScheduleIsNotConstructed for the zero value.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

// CarrierMovements returns a copy of the movements in order.
func (s Schedule) CarrierMovements() []CarrierMovement {
	return slices.Clone(s.carrierMovements)
}

// IsEmpty reports whether the schedule has no movements, which only holds for EmptySchedule.
func (s Schedule) IsEmpty() bool {
	return len(s.carrierMovements) == 0
}

// IsEqual compares the movements pairwise.
func (s Schedule) IsEqual(other Schedule) bool {
	return slices.EqualFunc(s.carrierMovements, other.carrierMovements, CarrierMovement.IsEqual)
}
