package advanced

import (
	"math"

	"go.uber.org/zap"
)

// Insert a point by sweeping the clockwise hull.
//
// Every hull edge the point can see gets a new triangle joining it to the
// point, and the hull vertices between visible edges end up inside the new
// hull. The visible edges must form one run. Rounding on a nearly straight
// stretch of hull can make a stray edge elsewhere look visible, so only the
// run around the edge the point sees most clearly is used.
func (t *Triangulation) insert(p Point) {
	n := len(t.hull)
	sides := make([]float64, n)
	deepest := 0
	deepestDistance := math.Inf(1)
	for i := range sides {
		a, b := t.hull[i], t.hull[CircularIndex(i+1, n)]
		sides[i] = Orient(p, a, b)
		if distance := sides[i] / a.Distance(b); distance < deepestDistance {
			deepest, deepestDistance = i, distance
		}
	}
	if !(sides[deepest] < 0) {
		t.insertInside(p)
		return
	}

	first, last := deepest, deepest
	for prev := CircularIndex(first-1, n); sides[prev] < 0 && prev != deepest; prev = CircularIndex(first-1, n) {
		first = prev
	}
	for next := CircularIndex(last+1, n); sides[next] < 0 && next != first; next = CircularIndex(last+1, n) {
		last = next
	}
	count := CircularIndex(last-first, n) + 1
	if count == n {
		fatalf("point %s sees every hull edge", p)
	}

	removed := make(map[int]bool, count-1)
	for k := 0; k < count; k++ {
		i := CircularIndex(first+k, n)
		next := CircularIndex(i+1, n)
		t.addTriangle(p, t.hull[next], t.hull[i])
		if k < count-1 {
			removed[next] = true
		}
	}

	if ce := t.logger.Check(zap.DebugLevel, "stray visible hull edges ignored"); ce != nil {
		stray := 0
		for _, side := range sides {
			if side < 0 {
				stray++
			}
		}
		if stray -= count; stray > 0 {
			ce.Write(zap.Stringer("point", p), zap.Int("edges", stray))
		}
	}

	hull := make([]Point, 0, n-len(removed)+1)
	for i, v := range t.hull {
		if removed[i] {
			continue
		}
		hull = append(hull, v)
		if i == first {
			hull = append(hull, p)
		}
	}
	t.points = append(t.points, p)
	t.hull = hull
}

// The seed pair is not necessarily a closest pair, so a later point can land
// inside the current hull. Those are inserted by splitting whatever contains
// them. Points within rounding error of an edge, including a hull edge, split
// that edge.
func (t *Triangulation) insertInside(p Point) {
	for _, triangle := range t.triangles {
		a, b, c := triangle.Vertices[0], triangle.Vertices[1], triangle.Vertices[2]
		sides := [3]float64{Orient(p, a, b), Orient(p, b, c), Orient(p, c, a)}
		if sides[0] < 0 || sides[1] < 0 || sides[2] < 0 {
			continue
		}

		t.stats.InteriorInsertions++
		t.points = append(t.points, p)
		for i, side := range sides {
			if side == 0 {
				t.logger.Debug("splitting edge", zap.Stringer("point", p), zap.Stringer("edge", triangle.Edge(i)))
				t.splitEdge(p, triangle.Edge(i))
				return
			}
		}
		if ce := t.logger.Check(zap.DebugLevel, "splitting triangle"); ce != nil {
			ce.Write(zap.Stringer("point", p), zap.String("triangle", t.dbgName(triangle)))
		}
		t.splitTriangle(p, triangle)
		return
	}
	fatalf("point %s is outside every hull edge and inside no triangle", p)
}

// Replace triangle abc with abp, bcp and cap.
func (t *Triangulation) splitTriangle(p Point, triangle *Triangle) {
	a, b, c := triangle.Vertices[0], triangle.Vertices[1], triangle.Vertices[2]
	bc := t.mustEdge(NewEdgeKey(b, c))
	ca := t.mustEdge(NewEdgeKey(c, a))

	triangle.Vertices = [3]Point{a, b, p}
	triangle.refresh()
	second := t.newTriangle(b, c, p)
	third := t.newTriangle(c, a, p)

	bc.replaceTriangle(triangle.Index, second.Index)
	ca.replaceTriangle(triangle.Index, third.Index)

	ap := t.edge(a, p)
	ap.addTriangle(triangle.Index)
	ap.addTriangle(third.Index)
	bp := t.edge(b, p)
	bp.addTriangle(triangle.Index)
	bp.addTriangle(second.Index)
	cp := t.edge(c, p)
	cp.addTriangle(second.Index)
	cp.addTriangle(third.Index)
}

// Split an edge at a point lying exactly on it. Each bordering triangle uwc
// becomes upc and pwc. A hull edge also gains the point as a hull vertex.
func (t *Triangulation) splitEdge(p Point, key EdgeKey) {
	split := t.mustEdge(key)
	delete(t.edges, key)

	for _, index := range split.Triangles {
		if index == -1 {
			continue
		}
		triangle := t.triangles[index]
		i := edgeSlot(triangle, key)
		if i == -1 {
			fatalf("triangle %s has no edge %s", triangle, key)
		}
		u, w, c := triangle.Vertices[i], triangle.Vertices[(i+1)%3], triangle.Vertices[(i+2)%3]

		triangle.Vertices = [3]Point{u, p, c}
		triangle.refresh()
		second := t.newTriangle(p, w, c)

		t.mustEdge(NewEdgeKey(w, c)).replaceTriangle(triangle.Index, second.Index)
		t.edge(u, p).addTriangle(triangle.Index)
		t.edge(p, w).addTriangle(second.Index)
		pc := t.edge(p, c)
		pc.addTriangle(triangle.Index)
		pc.addTriangle(second.Index)
	}

	if !split.IsHull() {
		return
	}
	n := len(t.hull)
	for i := 0; i < n; i++ {
		if NewEdgeKey(t.hull[i], t.hull[CircularIndex(i+1, n)]) == key {
			t.hull = append(t.hull[:i+1], append([]Point{p}, t.hull[i+1:]...)...)
			return
		}
	}
	fatalf("hull edge %s not found on the hull", key)
}

// The slot i such that triangle.Edge(i) is key, or -1.
func edgeSlot(triangle *Triangle, key EdgeKey) int {
	for i := 0; i < 3; i++ {
		if triangle.Edge(i) == key {
			return i
		}
	}
	return -1
}
