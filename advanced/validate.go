package advanced

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"
)

var ErrInvalidTriangulation = errors.New("invalid triangulation")

// Validate checks a triangulation for internal consistency:
//
//  1. Edge back-references and triangle edges agree in both directions.
//  2. Every triangle is strictly clockwise.
//  3. No two edges cross.
//  4. No point lies strictly inside a triangle's circumcircle. This is only
//     checked when no flip was skipped for hitting the flip cap.
//
// Crossing and circumcircle queries go through R-trees, so this is fast
// enough to run on large inputs.
func (t *Triangulation) Validate() error {
	if err := t.validateReferences(); err != nil {
		return err
	}
	if err := t.validatePlanarity(); err != nil {
		return err
	}
	if t.stats.SkippedFlips == 0 {
		return t.validateEmptyCircles()
	}
	return nil
}

func (t *Triangulation) validateReferences() error {
	for key, e := range t.edges {
		if e.Key() != key {
			return errors.Wrapf(ErrInvalidTriangulation, "edge %s stored under key %s", e, key)
		}
		if n := e.Neighbours(); n < 1 || n > 2 {
			return errors.Wrapf(ErrInvalidTriangulation, "edge %s borders %d triangles", e, n)
		}
		for _, index := range e.Triangles {
			if index == -1 {
				continue
			}
			if edgeSlot(t.triangles[index], key) == -1 {
				return errors.Wrapf(ErrInvalidTriangulation, "edge %s refers to triangle %d which does not contain it", e, index)
			}
		}
	}
	for _, triangle := range t.triangles {
		a, b, c := triangle.Vertices[0], triangle.Vertices[1], triangle.Vertices[2]
		if !(Cross(c, a, b) > 0) {
			return errors.Wrapf(ErrInvalidTriangulation, "triangle %s is not clockwise", triangle)
		}
		for i := 0; i < 3; i++ {
			e, ok := t.edges[triangle.Edge(i)]
			if !ok {
				return errors.Wrapf(ErrInvalidTriangulation, "triangle %s has unregistered edge %s", triangle, triangle.Edge(i))
			}
			if e.Triangles[0] != triangle.Index && e.Triangles[1] != triangle.Index {
				return errors.Wrapf(ErrInvalidTriangulation, "edge %s does not refer back to triangle %d", e, triangle.Index)
			}
		}
	}
	return nil
}

type spatialEdge struct {
	edge   *Edge
	bounds rtreego.Rect
}

func (s *spatialEdge) Bounds() rtreego.Rect {
	return s.bounds
}

type spatialPoint struct {
	point  Point
	bounds rtreego.Rect
}

func (s *spatialPoint) Bounds() rtreego.Rect {
	return s.bounds
}

// A box around the given extents, padded so degenerate boxes (points,
// horizontal and vertical edges) still have volume.
func boundingRect(minX, minY, maxX, maxY float64) rtreego.Rect {
	pad := Tolerance * math.Max(1, math.Max(math.Abs(maxX-minX), math.Abs(maxY-minY)))
	rect, err := rtreego.NewRect(
		rtreego.Point{minX - pad, minY - pad},
		[]float64{maxX - minX + 2*pad, maxY - minY + 2*pad},
	)
	if err != nil {
		fatalf("bounding box (%g, %g)-(%g, %g): %v", minX, minY, maxX, maxY, err)
	}
	return rect
}

func (t *Triangulation) validatePlanarity() (err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	spatials := make([]rtreego.Spatial, 0, len(t.edges))
	for _, e := range t.Edges() {
		spatials = append(spatials, &spatialEdge{
			edge: e,
			bounds: boundingRect(
				math.Min(e.Start.X, e.End.X), math.Min(e.Start.Y, e.End.Y),
				math.Max(e.Start.X, e.End.X), math.Max(e.Start.Y, e.End.Y),
			),
		})
	}
	tree := rtreego.NewTree(2, 25, 50, spatials...)

	for _, s := range spatials {
		current := s.(*spatialEdge)
		candidates := tree.SearchIntersect(current.bounds, func(results []rtreego.Spatial, object rtreego.Spatial) (refuse, abort bool) {
			return object == s, false
		})
		for _, candidate := range candidates {
			other := candidate.(*spatialEdge).edge
			if sharesEndpoint(current.edge, other) {
				continue
			}
			if SegmentsIntersect(current.edge.Start, current.edge.End, other.Start, other.End) {
				return errors.Wrapf(ErrInvalidTriangulation, "edges %s and %s cross", current.edge, other)
			}
		}
	}
	return nil
}

func sharesEndpoint(e, other *Edge) bool {
	key := other.Key()
	return key.Has(e.Start) || key.Has(e.End)
}

func (t *Triangulation) validateEmptyCircles() (err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	spatials := make([]rtreego.Spatial, 0, len(t.points))
	for _, p := range t.points {
		spatials = append(spatials, &spatialPoint{point: p, bounds: boundingRect(p.X, p.Y, p.X, p.Y)})
	}
	tree := rtreego.NewTree(2, 25, 50, spatials...)

	for _, triangle := range t.triangles {
		center, radius := triangle.Circumcircle()
		if math.IsInf(radius, 1) {
			return errors.Wrapf(ErrInvalidTriangulation, "triangle %s is degenerate", triangle)
		}
		query := boundingRect(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
		// Points on the circle are allowed, as are points a hair inside it.
		limit := radius - Tolerance*math.Max(1, radius)
		for _, candidate := range tree.SearchIntersect(query) {
			p := candidate.(*spatialPoint).point
			if triangle.HasVertex(p) {
				continue
			}
			if p.Distance(center) < limit {
				return errors.Wrapf(ErrInvalidTriangulation, "point %s is inside the circumcircle of %s", p, triangle)
			}
		}
	}
	return nil
}
