// Package location models the places a cargo can be handled at.
//
// The package includes:
//   - UnLocode: a United Nations location code value object, upper-cased on construction
//   - Location: an entity identified by its UnLocode and carrying a display name
//   - Unknown: the location reported when nothing is known about where a cargo is
//   - A set of well-known sample locations used by tests and demos
package location
