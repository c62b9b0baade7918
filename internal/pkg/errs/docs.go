// Package errs provides standardized error types for the campusrun backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package defines one error type per failure kind in the service's
// error taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures, client-fixable, no state change
//   - NotOwnerError: the requester does not own the object (authorization)
//   - StatusConflictError: an order lifecycle guard rejected the requested
//     transition; carries the order's current status
//   - ObjectNotFoundError: an object with the given id does not exist
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrStatusConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Persistence failures are not modeled here: repository and unit-of-work
// errors propagate wrapped, and anything that does not unwrap to one of the
// sentinels above is treated as an internal error at the HTTP boundary.
// That boundary is the single place where error kinds are mapped to HTTP
// status codes.
package errs
