package profile

import "fmt"

// ValidationError is a malformed or contradictory profile field. It is
// always recoverable by the user re-submitting corrected input; nothing
// is written when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s: %s", e.Field, e.Reason)
}
