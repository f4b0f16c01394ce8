/*
errors.go - Error types for the benefit engine

PURPOSE:
  Sentinel errors for precondition violations and schedule misconfiguration,
  in one place for consistency. Validation findings are NOT errors in this
  sense: they are ValidationError values returned by Validate (see types.go).

ERROR CATEGORIES:
  1. Precondition violations - the caller invoked the engine with input that
     never passed validation (negative salary, zero due date, unknown
     pregnancy type). These signal programmer error, not user error.
  2. Schedule errors - a rate schedule failed structural validation.

USAGE:
  if errors.Is(err, benefit.ErrMissingDueDate) { ... }
  if benefit.IsPreconditionViolation(err) { respond 400 }

SEE ALSO:
  - engine.go: where precondition violations are raised
  - schedule.go: where schedule errors are raised
*/
package benefit

import "errors"

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNegativeSalary is returned when Calculate receives a salary below zero.
	ErrNegativeSalary = errors.New("negative salary")

	// ErrMissingDueDate is returned when Calculate receives a zero due date.
	ErrMissingDueDate = errors.New("missing due date")

	// ErrInvalidPregnancyType is returned when Calculate receives a pregnancy
	// type that is neither single nor multiple.
	ErrInvalidPregnancyType = errors.New("invalid pregnancy type")

	// ErrInvalidSchedule is returned when a rate schedule fails validation.
	ErrInvalidSchedule = errors.New("invalid rate schedule")
)

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsPreconditionViolation returns true if the error indicates the caller
// passed unvalidated or malformed input to the engine.
func IsPreconditionViolation(err error) bool {
	return errors.Is(err, ErrNegativeSalary) ||
		errors.Is(err, ErrMissingDueDate) ||
		errors.Is(err, ErrInvalidPregnancyType)
}
