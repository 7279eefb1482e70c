package advanced

// GabrielGraph keeps the edges whose diametral circle is empty.
//
// For a Delaunay edge it is enough to check the far vertex of each bordering
// triangle: the edge survives when that vertex is strictly outside the circle
// with the edge as diameter, that is AB² < AC² + BC². Lengths are normalized
// by the shortest side first.
func GabrielGraph(t *Triangulation) []*Edge {
	var result []*Edge
	for _, e := range t.Edges() {
		if t.gabriel(e) {
			result = append(result, e)
		}
	}
	return result
}

func (t *Triangulation) gabriel(e *Edge) bool {
	for _, triangle := range t.bordering(e) {
		c, ok := triangle.Opposite(e.Key())
		if !ok {
			fatalf("triangle %s does not border edge %s", triangle, e)
		}
		sides := normalize(e.Length, e.Start.Distance(c), e.End.Distance(c))
		ab, ac, bc := sides[0], sides[1], sides[2]
		if !(ab*ab < ac*ac+bc*bc) {
			return false
		}
	}
	return true
}
