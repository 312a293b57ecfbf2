// Package errs provides standardized error types for the tours application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value falls outside its bounds
//   - ValidationError: For request-level validation with per-field details
//   - ObjectNotFoundError: For when an object cannot be found
//   - VersionIsInvalidError: For optimistic concurrency conflicts
//   - ConsistencyError: For multi-step writes that partially failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels; IsValidation
// groups the three value errors and ValidationError into one class.
package errs
