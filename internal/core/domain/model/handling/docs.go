// Package handling records what actually happened to a cargo.
//
// The package includes:
//   - EventType: the kind of handling (Load, Unload, Receive, Claim, Customs)
//   - Event: one reported handling of a cargo at a location, optionally on a voyage
//   - History: the set of events reported for one cargo
//
// Events are reported by external collaborators and may arrive more than once. Two
// reports that differ only in registration time describe the same real-world event;
// History collapses them and orders the result by completion time.
package handling
