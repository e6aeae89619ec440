package cargo

import (
	"fmt"

	"booking/internal/core/domain/model/handling"
	"booking/internal/core/domain/model/location"
	"booking/internal/core/domain/model/voyage"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrHandlingActivityIsNotConstructed is returned when validating a zero-value HandlingActivity.
var ErrHandlingActivityIsNotConstructed = errs.NewValueIsRequiredError(
	"handling activity must be created via NewHandlingActivity")

// HandlingActivity is how and where a cargo is expected to be handled next.
type HandlingActivity struct {
	eventType handling.EventType
	location  location.Location
	voyage    *voyage.Voyage
	guard     guard.ConstructorGuard
}

// NewHandlingActivity creates a HandlingActivity. The voyage is optional; pass nil
// when the activity does not name one.
func NewHandlingActivity(eventType handling.EventType, loc location.Location, v *voyage.Voyage) (HandlingActivity, error) {
	if err := eventType.Validate(); err != nil {
		return HandlingActivity{}, err
	}
	if err := loc.Validate(); err != nil {
		return HandlingActivity{}, errs.NewValueIsRequiredErrorWithCause("location", err)
	}
	if v != nil {
		if err := v.Validate(); err != nil {
			return HandlingActivity{}, errs.NewValueIsRequiredErrorWithCause("voyage", err)
		}
	}

	return HandlingActivity{
		eventType: eventType,
		location:  loc,
		voyage:    v,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrHandlingActivityIsNotConstructed for the zero value.
func (a HandlingActivity) Validate() error {
	return a.guard.Validate(ErrHandlingActivityIsNotConstructed)
}

// EventType returns the kind of the expected handling.
func (a HandlingActivity) EventType() handling.EventType {
	return a.eventType
}

// Location returns where the handling is expected.
func (a HandlingActivity) Location() location.Location {
	return a.location
}

// Voyage returns the expected voyage, voyage.Empty when the activity names none.
func (a HandlingActivity) Voyage() *voyage.Voyage {
	if a.voyage == nil {
		return voyage.Empty
	}
	return a.voyage
}

// IsEqual compares event type, location and voyage.
func (a HandlingActivity) IsEqual(other HandlingActivity) bool {
	return a.eventType == other.eventType &&
		a.location.SameIdentityAs(other.location) &&
		sameVoyage(a.Voyage(), other.Voyage())
}

// String formats the activity, e.g. "Unload at Hamburg [DEHAM] on CM01".
func (a HandlingActivity) String() string {
	if a.voyage == nil {
		return fmt.Sprintf("%s at %s", a.eventType, a.location)
	}
	return fmt.Sprintf("%s at %s on %s", a.eventType, a.location, a.voyage)
}

func sameVoyage(a, b *voyage.Voyage) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	return a.SameIdentityAs(b)
}
