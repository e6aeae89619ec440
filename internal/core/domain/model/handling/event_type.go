package handling

import (
	"fmt"

	"booking/internal/pkg/errs"
)

// EventType is the kind of a handling event.
//
// Load and Unload happen on a voyage and require one. Receive, Claim and Customs happen
// in port and prohibit a voyage.
type EventType int

const (
	// UnknownEventType is the zero value and is never valid.
	UnknownEventType EventType = iota

	// Load puts the cargo on board a carrier.
	Load

	// Unload takes the cargo off a carrier.
	Unload

	// Receive is the hand-over of the cargo from the customer at the origin.
	Receive

	// Claim is the hand-over of the cargo to the customer at the destination.
	Claim

	// Customs is a customs inspection. It does not move the cargo.
	Customs
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		UnknownEventType: "Unknown",
		Load:             "Load",
		Unload:           "Unload",
		Receive:          "Receive",
		Claim:            "Claim",
		Customs:          "Customs",
	}
}

func getValidEventTypes() map[EventType]struct{} {
	//nolint:exhaustive // UnknownEventType is intentionally excluded as it's invalid
	return map[EventType]struct{}{
		Load:    {},
		Unload:  {},
		Receive: {},
		Claim:   {},
		Customs: {},
	}
}

// Validate returns a ValueIsInvalidError for UnknownEventType and out-of-range values.
func (t EventType) Validate() error {
	if _, ok := getValidEventTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event type", fmt.Errorf("%d is not a valid event type", t))
	}
	return nil
}

// String returns the name of the type, "Unknown" for invalid values.
func (t EventType) String() string {
	if str, ok := getEventTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// RequiresVoyage reports whether events of this type must reference a voyage.
func (t EventType) RequiresVoyage() bool {
	return t == Load || t == Unload
}

// ProhibitsVoyage reports whether events of this type must not reference a voyage.
func (t EventType) ProhibitsVoyage() bool {
	return t == Receive || t == Claim || t == Customs
}
