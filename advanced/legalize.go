package advanced

import (
	"math"

	"go.uber.org/zap"
)

// Flip edges until a full pass over every triangle makes no flips.
//
// After a successful flip the same triangle is checked again, since its edges
// changed.
func (t *Triangulation) legalize() {
	for {
		flips := 0
		for i := 0; i < len(t.triangles); {
			if t.legalizeTriangle(i) {
				flips++
				continue
			}
			i++
		}
		t.stats.Passes++
		t.logger.Debug("legalization pass", zap.Int("pass", t.stats.Passes), zap.Int("flips", flips))
		if flips == 0 {
			return
		}
	}
}

func (t *Triangulation) legalizeTriangle(index int) bool {
	triangle := t.triangles[index]
	for j := 0; j < 3; j++ {
		e := t.mustEdge(triangle.Edge(j))
		if e.Neighbours() < 2 {
			continue
		}
		other := e.OtherTriangle(index)
		if other != -1 && t.checkAndFlip(index, other) {
			return true
		}
	}
	return false
}

// Flip the diagonal shared by two triangles if it violates the Delaunay
// condition, returning whether it did.
//
//	apex ----- b
//	 |  A    / |
//	 |     /   |
//	 |   /   B |
//	 c ----- far
//
// A runs clockwise, so the shared edge b->c appears reversed in B. If far lies
// strictly inside A's circumcircle, b-c is replaced with apex-far, A becomes
// (b, far, apex) and B becomes (far, c, apex).
func (t *Triangulation) checkAndFlip(aIndex, bIndex int) bool {
	if aIndex == bIndex {
		return false
	}
	a, b := t.triangles[aIndex], t.triangles[bIndex]

	i, j, k, l, found := sharedEdge(a, b)
	if !found {
		t.logger.Debug("triangles share no edge", zap.Int("a", aIndex), zap.Int("b", bIndex))
		return false
	}
	pb := a.Vertices[i]
	pc := a.Vertices[j]
	apex := a.Vertices[(j+1)%3]
	far := b.Vertices[CircularIndex(l-1, 3)]

	shared := t.mustEdge(NewEdgeKey(pb, pc))
	if _, exists := t.edges[NewEdgeKey(apex, far)]; exists {
		return false
	}

	center, radius := a.Circumcircle()
	if math.IsInf(radius, 1) || !(far.Distance(center) < radius) {
		return false
	}
	// Both new triangles must come out clockwise. In exact arithmetic the
	// circle test already guarantees a convex quadrilateral.
	if !(Cross(apex, pb, far) > 0 && Cross(apex, far, pc) > 0) {
		return false
	}

	if shared.FlipCount >= t.options.MaxFlips {
		t.stats.SkippedFlips++
		if ce := t.logger.Check(zap.DebugLevel, "flip cap reached"); ce != nil {
			ce.Write(
				zap.String("a", t.dbgName(a)),
				zap.String("b", t.dbgName(b)),
				zap.Stringer("edge", shared.Key()),
				zap.Int("flipCount", shared.FlipCount),
			)
		}
		return false
	}

	delete(t.edges, shared.Key())
	t.mustEdge(NewEdgeKey(pb, far)).replaceTriangle(bIndex, aIndex)
	t.mustEdge(NewEdgeKey(apex, pc)).replaceTriangle(aIndex, bIndex)

	a.Vertices[j] = far
	b.Vertices[k] = apex

	diagonal := t.edge(far, apex)
	diagonal.addTriangle(aIndex)
	diagonal.addTriangle(bIndex)
	diagonal.FlipCount = shared.FlipCount + 1

	a.refresh()
	b.refresh()
	t.stats.Flips++

	if ce := t.logger.Check(zap.DebugLevel, "flipped"); ce != nil {
		ce.Write(
			zap.String("a", t.dbgName(a)),
			zap.String("b", t.dbgName(b)),
			zap.Stringer("removed", shared.Key()),
			zap.Stringer("added", diagonal.Key()),
			zap.Int("flipCount", diagonal.FlipCount),
		)
	}
	return true
}

// Find the edge a[i]->a[j] which appears in b as b[k]->b[l], with j = i+1
// and l = k-1.
func sharedEdge(a, b *Triangle) (i, j, k, l int, found bool) {
	for i = 0; i < 3; i++ {
		j = (i + 1) % 3
		for k = 2; k >= 0; k-- {
			l = CircularIndex(k-1, 3)
			if a.Vertices[i] == b.Vertices[k] && a.Vertices[j] == b.Vertices[l] {
				return i, j, k, l, true
			}
		}
	}
	return 0, 0, 0, 0, false
}
