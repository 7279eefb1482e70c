package advanced

import "math"

const (
	secantTolerance     = 1e-10
	secantMaxIterations = 100
	// 2^64 is far past the point where any finite c > 1 overflows, so running
	// out of doublings means c^D never outgrows a^D + b^D.
	maxDoublings = 64
)

// SolveForD finds the exponent D where c^D = a^D + b^D, for a triangle with
// sides a and b and a longer side c. Lengths should be normalized so that the
// shortest is 1.
//
// The search starts at 2 and doubles until c^D catches up with a^D + b^D,
// then refines with the secant method. If c^D overflows while doubling, that
// D is returned as the answer, since the true root is beyond anything the
// floats can tell apart. If c^D never catches up, the result is +Inf.
func SolveForD(c, a, b float64) float64 {
	f := func(d float64) float64 {
		return math.Pow(c, d) - math.Pow(a, d) - math.Pow(b, d)
	}

	d := 2.0
	fd := f(d)
	if fd == 0 {
		return d
	}

	for doublings := 0; fd < 0; doublings++ {
		if doublings == maxDoublings {
			return math.Inf(1)
		}
		d *= 2
		if math.IsInf(math.Pow(c, d), 1) {
			return d
		}
		fd = f(d)
	}

	previous := d + 1
	fPrevious := f(previous)
	for i := 0; i < secantMaxIterations; i++ {
		fd = f(d)
		if fd == 0 || fd == fPrevious || math.IsNaN(fd) || math.IsNaN(fPrevious) {
			break
		}
		next := (d*fPrevious - previous*fd) / (fPrevious - fd)
		if math.IsNaN(next) || math.IsInf(next, 0) {
			break
		}
		previous, fPrevious = d, fd
		d = next
		if math.Abs(previous-d) < secantTolerance {
			break
		}
	}
	return d
}
