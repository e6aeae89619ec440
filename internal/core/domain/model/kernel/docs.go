// Package kernel holds the primitives shared by more than one aggregate of the
// booking domain.
//
// The package includes:
//   - TrackingID: the identity of a cargo, referenced by the cargo aggregate and by
//     every handling event recorded for it
//
// TrackingID is an immutable, comparable value object and is safe for concurrent use.
package kernel
