package advanced

import (
	"fmt"
	"math"
)

// Points are plain values. They are compared exactly, so they can be used as
// map keys, and coordinates from the input are never modified.
type Point struct {
	X float64
	Y float64
}

// Lexicographic order: by X, then by Y.
func (p Point) Less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// EdgeKey identifies an edge by its unordered endpoint pair. A is never
// lexicographically greater than B, so both construction orders produce the
// same key.
type EdgeKey struct {
	A Point
	B Point
}

func NewEdgeKey(p, q Point) EdgeKey {
	if q.Less(p) {
		p, q = q, p
	}
	return EdgeKey{A: p, B: q}
}

func (k EdgeKey) Has(p Point) bool {
	return k.A == p || k.B == p
}

func (k EdgeKey) Less(other EdgeKey) bool {
	if k.A != other.A {
		return k.A.Less(other.A)
	}
	return k.B.Less(other.B)
}

func (k EdgeKey) String() string {
	return fmt.Sprintf("%s-%s", k.A, k.B)
}

// An Edge of the triangulation. Start and End keep the order the edge was
// first created in, which is what the orientation tests are relative to.
//
// The implicit line is A*x + B*y + C = 0, and the perpendicular bisector is
// B*x - A*y + BisectorC = 0.
type Edge struct {
	Start     Point
	End       Point
	Length    float64
	A, B, C   float64
	BisectorC float64
	Midpoint  Point

	// Indexes of the bordering triangles, -1 when absent. Interior edges have
	// two, hull edges have one.
	Triangles [2]int
	FlipCount int
}

func newEdge(start, end Point) *Edge {
	e := &Edge{
		Start:     start,
		End:       end,
		Length:    start.Distance(end),
		Triangles: [2]int{-1, -1},
	}
	e.A = start.Y - end.Y
	e.B = end.X - start.X
	e.C = -e.B*start.Y - e.A*start.X
	e.Midpoint = Point{X: (start.X + end.X) / 2, Y: (start.Y + end.Y) / 2}
	e.BisectorC = e.A*e.Midpoint.Y - e.B*e.Midpoint.X
	return e
}

func (e *Edge) Key() EdgeKey {
	return NewEdgeKey(e.Start, e.End)
}

// Number of bordering triangles.
func (e *Edge) Neighbours() int {
	count := 0
	for _, index := range e.Triangles {
		if index != -1 {
			count++
		}
	}
	return count
}

func (e *Edge) IsHull() bool {
	return e.Neighbours() == 1
}

// The bordering triangle other than the given one, or -1.
func (e *Edge) OtherTriangle(index int) int {
	if e.Triangles[0] == index {
		return e.Triangles[1]
	}
	return e.Triangles[0]
}

func (e *Edge) addTriangle(index int) {
	for i, existing := range e.Triangles {
		if existing == -1 {
			e.Triangles[i] = index
			return
		}
	}
	fatalf("edge %s already borders triangles %d and %d, cannot add %d", e.Key(), e.Triangles[0], e.Triangles[1], index)
}

func (e *Edge) replaceTriangle(oldIndex, newIndex int) {
	for i, existing := range e.Triangles {
		if existing == oldIndex {
			e.Triangles[i] = newIndex
			return
		}
	}
	fatalf("edge %s does not border triangle %d", e.Key(), oldIndex)
}

func (e *Edge) String() string {
	return fmt.Sprintf("%s -> %s", e.Start, e.End)
}

// A Triangle with clockwise vertices. Edge i joins Vertices[i] and
// Vertices[i+1], and Neighbors[i] is the triangle across that edge, or -1 on
// the hull.
type Triangle struct {
	Index     int
	Vertices  [3]Point
	Neighbors [3]int

	center Point
	radius float64
}

func newTriangle(index int, a, b, c Point) *Triangle {
	t := &Triangle{
		Index:     index,
		Vertices:  [3]Point{a, b, c},
		Neighbors: [3]int{-1, -1, -1},
	}
	t.refresh()
	return t
}

// Recompute the cached circumcircle. Must be called whenever the vertices
// change.
func (t *Triangle) refresh() {
	t.center, t.radius = Circumcircle(t.Vertices[0], t.Vertices[1], t.Vertices[2])
}

// The circumcenter and radius. The radius is the distance to the farthest
// vertex, and is +Inf for a degenerate triangle.
func (t *Triangle) Circumcircle() (Point, float64) {
	return t.center, t.radius
}

func (t *Triangle) Edge(i int) EdgeKey {
	return NewEdgeKey(t.Vertices[i], t.Vertices[(i+1)%3])
}

func (t *Triangle) Edges() [3]EdgeKey {
	return [3]EdgeKey{t.Edge(0), t.Edge(1), t.Edge(2)}
}

// The vertex which is not an endpoint of the given edge.
func (t *Triangle) Opposite(key EdgeKey) (Point, bool) {
	for _, v := range t.Vertices {
		if !key.Has(v) {
			return v, true
		}
	}
	return Point{}, false
}

func (t *Triangle) HasVertex(p Point) bool {
	return t.Vertices[0] == p || t.Vertices[1] == p || t.Vertices[2] == p
}

func (t *Triangle) String() string {
	return fmt.Sprintf("#%d %s -> %s -> %s", t.Index, t.Vertices[0], t.Vertices[1], t.Vertices[2])
}

type PointSet map[Point]struct{}

func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s PointSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}
