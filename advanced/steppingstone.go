package advanced

import (
	"math"
	"sort"
)

// SteppingStone holds the D-value spectrum of a triangulation. An edge's
// D-value is the largest exponent d for which it survives in the
// stepping-stone graph, so one spectrum answers Graph(d) for every d.
//
// The spectrum is computed once by NewSteppingStone and never changes, so a
// SteppingStone is safe for concurrent use.
type SteppingStone struct {
	triangulation *Triangulation
	spectrum      map[EdgeKey]float64
}

func NewSteppingStone(t *Triangulation) *SteppingStone {
	s := &SteppingStone{
		triangulation: t,
		spectrum:      make(map[EdgeKey]float64, len(t.edges)),
	}
	s.computeSpectrum()
	return s
}

func (s *SteppingStone) computeSpectrum() {
	for key, e := range s.triangulation.edges {
		d := math.Inf(1)
		for _, index := range e.Triangles {
			d = math.Min(d, s.walk(e, index))
		}
		s.spectrum[key] = d
	}
}

// Walk the fan of triangles on one side of an edge, starting at the given
// bordering triangle, and return the smallest D-value any masking vertex on
// that side forces.
//
// Only vertices inside the d-lune of the edge matter, and the lune shrinks as
// the D estimate drops. zmax is the lune's farthest point from the edge on
// this side. The walk moves through whichever edge of the current triangle
// the segment from the edge midpoint to zmax crosses, and stops once zmax is
// inside the current triangle's circumcircle, since no vertex beyond can fall
// inside the lune.
func (s *SteppingStone) walk(e *Edge, index int) float64 {
	minD := math.Inf(1)
	if index == -1 {
		return minD
	}
	t := s.triangulation
	key := e.Key()

	apex, ok := t.triangles[index].Opposite(key)
	if !ok {
		fatalf("triangle %d does not border edge %s", index, key)
	}
	clockwise := IsClockwise(apex, e.Start, e.End)
	zmax := boundingPoint(e, minD, clockwise)

	masking := key
	visited := make(map[int]bool)
	for index != -1 && !visited[index] {
		visited[index] = true
		triangle := t.triangles[index]
		vertex, ok := triangle.Opposite(masking)
		if !ok {
			fatalf("triangle %d does not border edge %s", index, masking)
		}

		center, radius := triangle.Circumcircle()
		if center.Distance(zmax) <= radius {
			break
		}

		lengths := normalize(e.Length, vertex.Distance(e.Start), vertex.Distance(e.End))
		length, length0, length1 := lengths[0], lengths[1], lengths[2]
		var masks bool
		if math.IsInf(minD, 1) {
			masks = length0 < length && length1 < length
		} else {
			masks = math.Pow(length0, minD)+math.Pow(length1, minD) <= math.Pow(length, minD)
		}
		if masks {
			if d := SolveForD(length, length0, length1); d < minD {
				minD = d
				zmax = boundingPoint(e, minD, clockwise)
			}
		}

		var next EdgeKey
		crossed := false
		if SegmentsIntersect(vertex, masking.A, e.Midpoint, zmax) {
			next, crossed = NewEdgeKey(vertex, masking.A), true
		}
		if SegmentsIntersect(vertex, masking.B, e.Midpoint, zmax) {
			next, crossed = NewEdgeKey(vertex, masking.B), true
		}
		if !crossed {
			break
		}
		masking = next
		index = t.mustEdge(next).OtherTriangle(index)
	}
	return minD
}

// The point of the d-lune boundary farthest from the edge, on the perpendicular
// bisector at height L/2 * sqrt(4^(1-1/d) - 1), on the clockwise or
// counterclockwise side of the edge.
func boundingPoint(e *Edge, d float64, clockwise bool) Point {
	height := e.Length / 2 * math.Sqrt(3)
	if !math.IsInf(d, 1) {
		height = e.Length / 2 * math.Sqrt(math.Pow(4, 1-1/d)-1)
	}
	if math.IsNaN(height) || height < 0 {
		height = 0
	}
	// (A, B) is normal to the edge, with length equal to the edge length.
	nx, ny := e.A/e.Length, e.B/e.Length
	z := Point{X: e.Midpoint.X + nx*height, Y: e.Midpoint.Y + ny*height}
	if IsClockwise(z, e.Start, e.End) != clockwise {
		z = Point{X: e.Midpoint.X - nx*height, Y: e.Midpoint.Y - ny*height}
	}
	return z
}

// The D-value of the edge between two points. The second result is false if
// the points are not joined by an edge.
func (s *SteppingStone) DValue(p, q Point) (float64, bool) {
	d, ok := s.spectrum[NewEdgeKey(p, q)]
	return d, ok
}

// A copy of the whole spectrum.
func (s *SteppingStone) Spectrum() map[EdgeKey]float64 {
	result := make(map[EdgeKey]float64, len(s.spectrum))
	for key, d := range s.spectrum {
		result[key] = d
	}
	return result
}

// The distinct finite D-values, ascending. These are the only values of d at
// which the graph changes.
func (s *SteppingStone) Thresholds() []float64 {
	var result []float64
	seen := make(map[float64]bool)
	for _, d := range s.spectrum {
		if math.IsInf(d, 1) || seen[d] {
			continue
		}
		seen[d] = true
		result = append(result, d)
	}
	sort.Float64s(result)
	return result
}

// Graph keeps the edges whose D-value is greater than d. D-values within
// Tolerance of d count as equal, and are dropped. At d = +Inf only edges with
// an infinite D-value (no vertex in their lune at all) survive.
func (s *SteppingStone) Graph(d float64) ([]*Edge, error) {
	if err := checkExponent("d", d); err != nil {
		return nil, err
	}

	var result []*Edge
	for _, e := range s.triangulation.Edges() {
		if survives(s.spectrum[e.Key()], d) {
			result = append(result, e)
		}
	}
	return result, nil
}

func survives(dValue, d float64) bool {
	if math.IsInf(d, 1) {
		return math.IsInf(dValue, 1)
	}
	return dValue > d && !Equal(dValue, d)
}
