package advanced

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrInsufficientPoints = errors.New("at least 3 distinct points are required")
	ErrCollinearPoints    = errors.New("all points are collinear")
	ErrInvalidExponent    = errors.New("exponent must be at least 2 or +Inf")
)

// Exponents for the parameterized graphs live in [2, +Inf].
func checkExponent(name string, value float64) error {
	if math.IsNaN(value) || value < 2 {
		return errors.Wrapf(ErrInvalidExponent, "%s = %v", name, value)
	}
	return nil
}
