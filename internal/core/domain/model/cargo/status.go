package cargo

import (
	"fmt"

	"booking/internal/pkg/errs"
)

// RoutingStatus tells whether a cargo has an itinerary and whether it fits the
// route specification.
type RoutingStatus int

const (
	// NotRouted means the cargo has no itinerary. It is the zero value.
	NotRouted RoutingStatus = iota

	// Routed means the itinerary satisfies the route specification.
	Routed

	// Misrouted means the itinerary does not satisfy the route specification.
	Misrouted
)

func getRoutingStatusStrings() map[RoutingStatus]string {
	return map[RoutingStatus]string{
		NotRouted: "NotRouted",
		Routed:    "Routed",
		Misrouted: "Misrouted",
	}
}

// Validate returns a ValueIsInvalidError for values outside the defined set.
func (s RoutingStatus) Validate() error {
	if _, ok := getRoutingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("routing status", fmt.Errorf("%d is not a valid routing status", s))
	}
	return nil
}

// String returns the name of the status.
func (s RoutingStatus) String() string {
	if str, ok := getRoutingStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// TransportStatus tells where a cargo physically is, as far as its handling history knows.
type TransportStatus int

const (
	// NotReceived means the cargo has not been handled yet. It is the zero value.
	NotReceived TransportStatus = iota

	// InPort means the cargo was last received, unloaded or inspected by customs.
	InPort

	// OnboardCarrier means the cargo was last loaded on a voyage.
	OnboardCarrier

	// Claimed means the customer has picked the cargo up.
	Claimed

	// UnknownTransportStatus is reported when the last event has no known mapping.
	UnknownTransportStatus
)

func getTransportStatusStrings() map[TransportStatus]string {
	return map[TransportStatus]string{
		NotReceived:            "NotReceived",
		InPort:                 "InPort",
		OnboardCarrier:         "OnboardCarrier",
		Claimed:                "Claimed",
		UnknownTransportStatus: "Unknown",
	}
}

// Validate returns a ValueIsInvalidError for values outside the defined set.
func (s TransportStatus) Validate() error {
	if _, ok := getTransportStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transport status", fmt.Errorf("%d is not a valid transport status", s))
	}
	return nil
}

// String returns the name of the status.
func (s TransportStatus) String() string {
	if str, ok := getTransportStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
