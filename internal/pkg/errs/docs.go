// Package errs provides standardized error types shared by all layers of the
// order-fulfillment service.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) used with errors.Is
//   - a struct type carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for error-chain support
//
// Handlers map these errors to transport-level responses; domain code raises
// them instead of ad-hoc fmt.Errorf values so callers can classify failures.
package errs
