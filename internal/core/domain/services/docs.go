// Package services provides domain services that build domain objects spanning
// several value objects.
//
// The package includes:
//   - VoyageBuilder: assembles a voyage from a chain of carrier movements
package services
