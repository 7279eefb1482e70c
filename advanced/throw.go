package advanced

import "github.com/pkg/errors"

// Threading errors up and down the insertion and flip routines would add a ton
// of complexity to the code. Instead, broken invariants panic, and the public
// API recovers to convert to an error.

type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}

// RecoverInto is deferred by functions with named results. A recovered
// TriangulateError is stored in *err, and *result is reset so no half-built
// value escapes.
func RecoverInto[T any](result *T, err *error) {
	if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
		var zero T
		*result = zero
		*err = recoveredErr
	}
}
