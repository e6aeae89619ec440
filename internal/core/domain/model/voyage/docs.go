// Package voyage models the static route data of vessels.
//
// The package includes:
//   - Number: the identity of a voyage
//   - CarrierMovement: one departure/arrival step of a vessel
//   - Schedule: the non-empty ordered sequence of carrier movements of a voyage
//   - Voyage: an entity identified by its Number and owning a Schedule
//
// Empty (with EmptySchedule) represents "no voyage" wherever a voyage is reported,
// for example the current voyage of a cargo that is not on board a carrier.
package voyage
