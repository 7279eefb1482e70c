package advanced

import (
	"container/heap"
	"math"
	"sort"
)

// ShortestPath derives shortest-path graphs: an edge is kept only if there is
// no cheaper way between its endpoints through shorter kept edges, where an
// edge of length l costs (l / shortest)^t.
type ShortestPath struct {
	triangulation *Triangulation
	// Edges ascending by length, ties by key.
	sorted    []*Edge
	minLength float64
}

func NewShortestPath(t *Triangulation) *ShortestPath {
	sorted := t.Edges()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Length < sorted[j].Length
	})
	s := &ShortestPath{triangulation: t, sorted: sorted}
	if len(sorted) > 0 {
		s.minLength = sorted[0].Length
	}
	return s
}

// Graph processes the edges from shortest to longest, accepting each one if
// its own cost is strictly less than the cheapest path already available
// through accepted edges. At t = +Inf costs are plain lengths, and an edge is
// accepted only when its endpoints are not yet connected at all.
func (s *ShortestPath) Graph(t float64) ([]*Edge, error) {
	if err := checkExponent("t", t); err != nil {
		return nil, err
	}
	connectivityOnly := math.IsInf(t, 1)
	if connectivityOnly {
		t = 1
	}

	accepted := make(adjacency)
	var result []*Edge
	for _, e := range s.sorted {
		weight := math.Pow(e.Length/s.minLength, t)
		pathWeight := accepted.cheapestPath(e.Start, e.End)
		if connectivityOnly && !math.IsInf(pathWeight, 1) {
			continue
		}
		if !connectivityOnly && !(weight < pathWeight) {
			continue
		}
		accepted.add(e.Start, e.End, weight)
		result = append(result, e)
	}
	sortEdgesByKey(result)
	return result, nil
}

type neighbor struct {
	to     Point
	weight float64
}

type adjacency map[Point][]neighbor

func (a adjacency) add(p, q Point, weight float64) {
	a[p] = append(a[p], neighbor{to: q, weight: weight})
	a[q] = append(a[q], neighbor{to: p, weight: weight})
}

// Dijkstra from source, stopping as soon as target is settled. Returns +Inf
// if target is unreachable.
func (a adjacency) cheapestPath(source, target Point) float64 {
	dist := map[Point]float64{source: 0}
	visited := make(map[Point]bool)
	pq := nodePQ{{point: source, dist: 0}}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		if visited[item.point] {
			continue
		}
		if item.point == target {
			return item.dist
		}
		visited[item.point] = true
		for _, n := range a[item.point] {
			if visited[n.to] {
				continue
			}
			candidate := item.dist + n.weight
			if current, ok := dist[n.to]; !ok || candidate < current {
				dist[n.to] = candidate
				heap.Push(&pq, &nodeItem{point: n.to, dist: candidate})
			}
		}
	}
	return math.Inf(1)
}

// Min-heap of tentative distances. Decrease-key is lazy: improved distances
// are pushed again and stale entries skipped when popped.
type nodeItem struct {
	point Point
	dist  float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) {
	*pq = append(*pq, x.(*nodeItem))
}

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
