package advanced

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Stats describes the work done by a build.
type Stats struct {
	// Successful edge flips during legalization.
	Flips int
	// Flips refused because the shared edge had reached the flip cap. When this
	// is nonzero the result may not satisfy the empty circumcircle property.
	SkippedFlips int
	// Full legalization passes, including the final pass without flips.
	Passes int
	// Points that landed inside the current hull and were inserted by
	// splitting a triangle or an edge rather than by the hull sweep.
	InteriorInsertions int
}

// A Triangulation is built once by Build, and is read-only afterwards. Any
// number of goroutines may derive graphs from the same Triangulation.
type Triangulation struct {
	points    []Point
	hull      []Point
	edges     map[EdgeKey]*Edge
	triangles []*Triangle
	options   Options
	logger    *zap.Logger
	stats     Stats
}

// Build computes the Delaunay triangulation of the points with the S-hull
// sweep followed by flip legalization. Duplicate points are dropped.
func Build(points []Point, opts ...Option) (result *Triangulation, err error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	defer RecoverInto(&result, &err)

	unique := dedupe(points)
	if len(unique) < 3 {
		return nil, errors.Wrapf(ErrInsufficientPoints, "got %d distinct points", len(unique))
	}

	t := &Triangulation{
		edges:   make(map[EdgeKey]*Edge, 3*len(unique)),
		options: options,
		logger:  options.Logger,
	}

	remaining, err := t.seed(unique)
	if err != nil {
		return nil, err
	}
	for _, p := range remaining {
		t.insert(p)
	}
	t.legalize()
	t.linkNeighbors()

	t.logger.Info("triangulation built",
		zap.Int("points", len(t.points)),
		zap.Int("duplicates", len(points)-len(unique)),
		zap.Int("edges", len(t.edges)),
		zap.Int("triangles", len(t.triangles)),
		zap.Int("hull", len(t.hull)),
		zap.Int("flips", t.stats.Flips),
		zap.Int("skippedFlips", t.stats.SkippedFlips),
		zap.Int("passes", t.stats.Passes),
	)
	return t, nil
}

// Sorted lexicographically, without duplicates.
func dedupe(points []Point) []Point {
	seen := make(PointSet, len(points))
	unique := make([]Point, 0, len(points))
	for _, p := range points {
		if seen.Contains(p) {
			continue
		}
		seen.Add(p)
		unique = append(unique, p)
	}
	sort.Slice(unique, func(i, j int) bool {
		return unique[i].Less(unique[j])
	})
	return unique
}

// Pick the seed triangle and return the remaining points in insertion order.
//
// The first two sorted points are the seed pair, and the third seed vertex is
// whichever remaining point gives the smallest circumcircle with them. The
// rest are inserted in order of distance from the seed circumcenter.
func (t *Triangulation) seed(sorted []Point) ([]Point, error) {
	first, second := sorted[0], sorted[1]
	rest := append([]Point(nil), sorted[2:]...)

	best := -1
	bestRadius := math.Inf(1)
	for i, p := range rest {
		if _, radius := Circumcircle(first, second, p); radius < bestRadius {
			best, bestRadius = i, radius
		}
	}
	if best == -1 {
		return nil, errors.Wrapf(ErrCollinearPoints, "%d points", len(sorted))
	}
	third := rest[best]
	rest = append(rest[:best], rest[best+1:]...)

	if !IsClockwise(third, first, second) {
		first, second = second, first
	}
	seed := t.addTriangle(first, second, third)
	t.hull = []Point{first, second, third}
	t.points = append(t.points, first, second, third)

	center, radius := seed.Circumcircle()
	sort.SliceStable(rest, func(i, j int) bool {
		di, dj := rest[i].Distance(center), rest[j].Distance(center)
		if di != dj {
			return di < dj
		}
		return rest[i].Less(rest[j])
	})

	t.logger.Debug("seed triangle",
		zap.Stringer("a", first),
		zap.Stringer("b", second),
		zap.Stringer("c", third),
		zap.Stringer("center", center),
		zap.Float64("radius", radius),
	)
	return rest, nil
}

// Get the edge between two points, creating it if it doesn't exist yet.
func (t *Triangulation) edge(p, q Point) *Edge {
	key := NewEdgeKey(p, q)
	if e, ok := t.edges[key]; ok {
		return e
	}
	e := newEdge(p, q)
	t.edges[key] = e
	return e
}

func (t *Triangulation) mustEdge(key EdgeKey) *Edge {
	e, ok := t.edges[key]
	if !ok {
		fatalf("no edge %s in triangulation", key)
	}
	return e
}

// Append a triangle without touching the edge registry.
func (t *Triangulation) newTriangle(a, b, c Point) *Triangle {
	triangle := newTriangle(len(t.triangles), a, b, c)
	t.triangles = append(t.triangles, triangle)
	return triangle
}

// Append a triangle and register it with its three edges.
func (t *Triangulation) addTriangle(a, b, c Point) *Triangle {
	triangle := t.newTriangle(a, b, c)
	for i := 0; i < 3; i++ {
		t.edge(triangle.Vertices[i], triangle.Vertices[(i+1)%3]).addTriangle(triangle.Index)
	}
	return triangle
}

// Fill in each triangle's neighbor slots from the edge back-references. Only
// valid once no more flips will happen.
func (t *Triangulation) linkNeighbors() {
	for _, triangle := range t.triangles {
		for i := 0; i < 3; i++ {
			triangle.Neighbors[i] = t.mustEdge(triangle.Edge(i)).OtherTriangle(triangle.Index)
		}
	}
}

// Points in triangulation order: the seed triangle first, then the order they
// were inserted.
func (t *Triangulation) Points() []Point {
	return append([]Point(nil), t.points...)
}

// The convex hull, clockwise. Collinear boundary points are included.
func (t *Triangulation) Hull() []Point {
	return append([]Point(nil), t.hull...)
}

// All edges, ordered by key.
func (t *Triangulation) Edges() []*Edge {
	edges := make([]*Edge, 0, len(t.edges))
	for _, e := range t.edges {
		edges = append(edges, e)
	}
	sortEdgesByKey(edges)
	return edges
}

func (t *Triangulation) Edge(p, q Point) (*Edge, bool) {
	e, ok := t.edges[NewEdgeKey(p, q)]
	return e, ok
}

func (t *Triangulation) EdgeCount() int {
	return len(t.edges)
}

// Triangles, indexed by Triangle.Index.
func (t *Triangulation) Triangles() []*Triangle {
	return append([]*Triangle(nil), t.triangles...)
}

func (t *Triangulation) Triangle(index int) *Triangle {
	if index < 0 || index >= len(t.triangles) {
		return nil
	}
	return t.triangles[index]
}

func (t *Triangulation) Stats() Stats {
	return t.stats
}

// The triangles bordering an edge, skipping absent sides.
func (t *Triangulation) bordering(e *Edge) []*Triangle {
	result := make([]*Triangle, 0, 2)
	for _, index := range e.Triangles {
		if index != -1 {
			result = append(result, t.triangles[index])
		}
	}
	return result
}

func sortEdgesByKey(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Key().Less(edges[j].Key())
	})
}
