// Package errs provides standardized error types for the custody ledger.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups its error types into the categories callers branch on:
//   - Validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - Authorization: AccessDeniedError
//   - Not found: ObjectNotFoundError
//   - Conflict: ObjectAlreadyExistsError
//   - Invalid state: StateIsInvalidError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels, or with the
// IsValidation helper for the whole validation category.
package errs
