package advanced

import "math"

const Tolerance = 1e-6

// Relative error below which an orientation is treated as collinear. Far
// above the rounding error of Cross, far below any real turn.
const collinearEpsilon = 1e-12

// To compensate for imprecision in floats, parameter comparisons are tolerance
// based. Geometric predicates use the raw sign, except for Orient.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Cross product of (p - a) and (b - a), in the orientation the rest of the
// package uses: positive when p lies clockwise of the directed line a->b.
func Cross(p, a, b Point) float64 {
	return (p.X-a.X)*(b.Y-a.Y) - (b.X-a.X)*(p.Y-a.Y)
}

// Cross, snapped to zero when it is within rounding error of collinear
// relative to the lengths of b-a and p-a. Long, nearly straight runs of hull
// otherwise give signs that disagree from one edge to the next.
func Orient(p, a, b Point) float64 {
	cross := Cross(p, a, b)
	if math.Abs(cross) <= collinearEpsilon*a.Distance(b)*a.Distance(p) {
		return 0
	}
	return cross
}

// Points exactly on the line count as clockwise.
func IsClockwise(p, a, b Point) bool {
	return Cross(p, a, b) >= 0
}

// Whether the closed segments p1-p2 and p3-p4 share a point, including the
// collinear overlap cases.
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := Cross(p1, p3, p4)
	d2 := Cross(p2, p3, p4)
	d3 := Cross(p3, p1, p2)
	d4 := Cross(p4, p1, p2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(p3, p4, p1):
		return true
	case d2 == 0 && onSegment(p3, p4, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, p3):
		return true
	case d4 == 0 && onSegment(p1, p2, p4):
		return true
	}
	return false
}

// Bounding box check, only meaningful when k is already known to be collinear.
func onSegment(a, b, k Point) bool {
	return math.Min(a.X, b.X) <= k.X && k.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= k.Y && k.Y <= math.Max(a.Y, b.Y)
}

// Circumcenter and radius of the triangle abc. The radius is the distance to
// the farthest vertex, which absorbs rounding in the center. Collinear points
// have no circumcircle, and give a radius of +Inf.
//
// The circle is solved relative to a, so coordinates far from the origin keep
// their precision.
func Circumcircle(a, b, c Point) (Point, float64) {
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	d := 2 * (bx*cy - by*cx)
	if d == 0 {
		return Point{}, math.Inf(1)
	}
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	u := Point{
		X: (cy*b2 - by*c2) / d,
		Y: (bx*c2 - cx*b2) / d,
	}
	radius := math.Max(u.Distance(Point{}), math.Max(u.Distance(Point{bx, by}), u.Distance(Point{cx, cy})))
	if math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Point{}, math.Inf(1)
	}
	return Point{X: a.X + u.X, Y: a.Y + u.Y}, radius
}

// Lengths scaled so the shortest is 1, which keeps powers of them in range.
func normalize(lengths ...float64) []float64 {
	shortest := math.Inf(1)
	for _, l := range lengths {
		shortest = math.Min(shortest, l)
	}
	result := make([]float64, len(lengths))
	for i, l := range lengths {
		result[i] = l / shortest
	}
	return result
}
