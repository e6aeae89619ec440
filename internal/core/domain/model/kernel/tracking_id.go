package kernel

import (
	"strings"

	"booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTrackingIDIsNotConstructed is returned when validating a zero-value TrackingID.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking id must be created via NewTrackingID or NextTrackingID")

// TrackingID is the identity of a cargo. It is shared by the cargo aggregate and by
// the handling events that reference a cargo, which is why it lives in the kernel
// rather than in the cargo package.
//
// TrackingID is a comparable value object; two ids are equal when their strings are equal.
// The zero value is invalid.
//
// Example:
//
//	id, err := kernel.NewTrackingID("ABC123")
//	if err != nil {
//	    // empty id
//	}
//	fmt.Println(id) // ABC123
type TrackingID struct {
	id string
}

// NewTrackingID wraps a non-empty string as a TrackingID.
//
// Returns:
//   - TrackingID: the id
//   - error: ValueIsRequiredError if id is empty
func NewTrackingID(id string) (TrackingID, error) {
	if id == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("tracking id")
	}
	return TrackingID{id: id}, nil
}

// NextTrackingID generates a fresh tracking id from the first group of a random
// (version 4) UUID, upper-cased, e.g. "9A4C1F07".
func NextTrackingID() TrackingID {
	group, _, _ := strings.Cut(uuid.New().String(), "-")
	return TrackingID{id: strings.ToUpper(group)}
}

// String returns the id as given to NewTrackingID.
func (t TrackingID) String() string {
	return t.id
}

// IsEqual reports whether both ids are the same.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.id == other.id
}

// Validate returns ErrTrackingIDIsNotConstructed for the zero value.
func (t TrackingID) Validate() error {
	if t.id == "" {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}
