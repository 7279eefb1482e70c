// Delaunay triangulation and proximity graphs for Go.
//
// This package triangulates a set of points in the plane and derives the
// Gabriel, stepping-stone, diversion and shortest-path graphs from the
// result. Each function here builds a fresh triangulation. To derive several
// graphs from the same points, or to inspect D-values and build statistics,
// use the advanced package directly.
package proximity

import "github.com/osuushi/proximity/advanced"

type Point = advanced.Point
type Edge = advanced.Edge
type Triangle = advanced.Triangle

// Triangulate returns the Delaunay triangles of the points. Duplicate points
// are ignored, and at least three distinct, non-collinear points are needed.
func Triangulate(points []Point) (result []*Triangle, err error) {
	defer advanced.RecoverInto(&result, &err)
	t, err := advanced.Build(points)
	if err != nil {
		return nil, err
	}
	return t.Triangles(), nil
}

// The Gabriel graph: edges whose diametral circle contains no other point.
func Gabriel(points []Point) (result []*Edge, err error) {
	defer advanced.RecoverInto(&result, &err)
	t, err := advanced.Build(points)
	if err != nil {
		return nil, err
	}
	return advanced.GabrielGraph(t), nil
}

// The stepping-stone graph with exponent d, which must be at least 2 or
// +Inf. d = 2 gives the Gabriel graph, and d = +Inf the relative
// neighbourhood graph.
func SteppingStone(points []Point, d float64) (result []*Edge, err error) {
	defer advanced.RecoverInto(&result, &err)
	t, err := advanced.Build(points)
	if err != nil {
		return nil, err
	}
	return advanced.NewSteppingStone(t).Graph(d)
}

// The diversion graph with exponent d, which must be at least 2 or +Inf.
func Diversion(points []Point, d float64) (result []*Edge, err error) {
	defer advanced.RecoverInto(&result, &err)
	t, err := advanced.Build(points)
	if err != nil {
		return nil, err
	}
	return advanced.DiversionGraph(t, d)
}

// The shortest-path graph with exponent t, which must be at least 2 or +Inf.
// At +Inf this is a minimum spanning tree.
func ShortestPath(points []Point, t float64) (result []*Edge, err error) {
	defer advanced.RecoverInto(&result, &err)
	triangulation, err := advanced.Build(points)
	if err != nil {
		return nil, err
	}
	return advanced.NewShortestPath(triangulation).Graph(t)
}
