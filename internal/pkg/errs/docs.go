// Package errs provides standardized error types for the booking application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the domain model and the application layer.
//
// The package includes three error types:
//   - ValueIsRequiredError: a required value is missing (tracking id, route
//     specification, handling history, a voyage for Load/Unload events)
//   - ValueIsInvalidError: a value violates a domain constraint (UN/LOCODE pattern,
//     origin equal to destination, unset timestamps, a voyage on a Receive event)
//   - ObjectNotFoundError: an aggregate cannot be found in a repository
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the error
package errs
