package internal

import "github.com/pkg/errors"

// Threading errors up and down the insertion, legalization and cavity code for
// conditions that can only arise from a bug would add a ton of complexity.
// Instead, we panic with an InvariantViolation, and the public API recovers to
// convert it to an error.

type InvariantViolation struct {
	Err error
}

func (v *InvariantViolation) Error() string {
	return "invariant violation: " + v.Err.Error()
}

func (v *InvariantViolation) Unwrap() error {
	return v.Err
}

func (v *InvariantViolation) Cause() error {
	return v.Err
}

// Panic with an InvariantViolation.
func fatalf(format string, args ...interface{}) {
	panic(&InvariantViolation{errors.Errorf(format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if violation, ok := r.(*InvariantViolation); ok {
			return violation
		}
		panic(r)
	}
	return nil
}
