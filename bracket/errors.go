package bracket

import "fmt"

// Error reports which phase(s) of a bracket failed after a resource was
// acquired. Exactly one of three shapes occurs:
//
//   - UseErr set, CleanupErr nil: the use phase failed, cleanup succeeded.
//   - UseErr nil, CleanupErr set: the use phase succeeded, cleanup failed.
//   - both set: the use phase and cleanup both failed; both originals are
//     preserved.
//
// An acquire failure is never wrapped in Error — it propagates raw, since no
// resource existed to clean up.
type Error struct {
	// UseErr is the failure of the work phase, nil if use succeeded.
	UseErr error

	// CleanupErr is the failure of the release phase, nil if cleanup
	// succeeded.
	CleanupErr error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.UseErr != nil && e.CleanupErr != nil:
		return fmt.Sprintf("bracket: use failed: %v; cleanup also failed: %v", e.UseErr, e.CleanupErr)
	case e.CleanupErr != nil:
		return fmt.Sprintf("bracket: cleanup failed: %v", e.CleanupErr)
	case e.UseErr != nil:
		return fmt.Sprintf("bracket: use failed: %v", e.UseErr)
	default:
		return "bracket: no failure recorded"
	}
}

// Unwrap exposes the underlying errors to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	var errs []error
	if e.UseErr != nil {
		errs = append(errs, e.UseErr)
	}
	if e.CleanupErr != nil {
		errs = append(errs, e.CleanupErr)
	}
	return errs
}

// Both reports whether the use phase and cleanup both failed.
func (e *Error) Both() bool {
	return e.UseErr != nil && e.CleanupErr != nil
}
